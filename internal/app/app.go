// assembling the application and running a single one-shot invocation
package app

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dailyavatar/dailyavatar/config"
	"github.com/dailyavatar/dailyavatar/internal/entity"
	"github.com/dailyavatar/dailyavatar/internal/library"
	"github.com/dailyavatar/dailyavatar/internal/pkg/credentials"
	"github.com/dailyavatar/dailyavatar/internal/pkg/processor"
	"github.com/dailyavatar/dailyavatar/internal/pkg/storage"
	"github.com/dailyavatar/dailyavatar/internal/service"
	"github.com/dailyavatar/dailyavatar/internal/transport"
)

type App struct {
	service service.AvatarService
}

func NewApp(cfg *config.Config) (*App, error) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	outputStorage := storage.NewFileStorage(cfg.App.OutputDir)
	configStorage := storage.NewFileStorage(".")

	imgProcessor, err := processor.NewImageProcessor(cfg.App.FillColor)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	imgLibrary := library.NewImageLibrary(outputStorage, rng)
	credStore := credentials.NewStore(configStorage, cfg.App.TokenFile)
	slackClient := transport.NewSlackClient(cfg.App.SlackAPIURL)

	avatarService := service.NewAvatarService(imgLibrary, imgProcessor, slackClient, credStore, cfg.App.ProfileSize)

	return &App{service: avatarService}, nil
}

// Generate runs the select, composite, format, save, upload pipeline once.
func (a *App) Generate(req entity.GenerateRequest) (*entity.GenerateResult, error) {
	return a.service.Generate(context.Background(), req)
}

// SetupToken runs the interactive Slack token setup.
func (a *App) SetupToken(in io.Reader, out io.Writer) error {
	return a.service.SetupToken(in, out)
}
