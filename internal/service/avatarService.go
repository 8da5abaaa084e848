package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dailyavatar/dailyavatar/internal/entity"
)

// Generate runs one avatar build: pick a random foreground and background,
// composite them, optionally fit the result to a Slack profile photo, save
// it and optionally upload it. Uploading always implies the profile fit.
func (s *avatarService) Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResult, error) {
	runID := uuid.New().String()

	foreground, err := s.library.PickRandom(req.ForegroundDir)
	if err != nil {
		return nil, err
	}

	background, err := s.library.PickRandom(req.BackgroundDir)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"foreground": foreground,
		"background": background,
	}).Info("selected source images")

	img, err := s.processor.Composite(foreground, background)
	if err != nil {
		return nil, err
	}

	slackProfile := req.SlackProfile || req.Upload
	if slackProfile {
		img = s.processor.FitToProfile(img, s.profileSize)
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"size":   s.profileSize,
		}).Info("optimized image for Slack profile photo")
	}

	outputPath, err := s.library.SaveOutput(outputName(req.OutputName, foreground, background, slackProfile), img)
	if err != nil {
		return nil, err
	}

	result := &entity.GenerateResult{
		RunID:          runID,
		ForegroundPath: foreground,
		BackgroundPath: background,
		OutputPath:     outputPath,
	}

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"output": outputPath,
	}).Info("created layered image")

	if !req.Upload {
		return result, nil
	}

	token, err := s.credentials.Token()
	if err != nil {
		return nil, fmt.Errorf("upload requested: %w", err)
	}

	if err := s.uploader.Upload(ctx, img, token); err != nil {
		s.discardInvalidToken(err, runID)
		return nil, err
	}

	result.Uploaded = true
	logrus.WithField("run_id", runID).Info("uploaded image to Slack as profile photo")

	return result, nil
}

// SetupToken runs the interactive credential setup.
func (s *avatarService) SetupToken(in io.Reader, out io.Writer) error {
	if _, err := s.credentials.InteractiveSetup(in, out); err != nil {
		return err
	}
	logrus.Info("Slack token setup completed")
	return nil
}

// discardInvalidToken drops the stored credential when the API reported it
// unusable, so the next run prompts for a fresh one.
func (s *avatarService) discardInvalidToken(err error, runID string) {
	var uploadErr *entity.UploadError
	if !errors.As(err, &uploadErr) || !uploadErr.TokenInvalid() {
		return
	}

	if clearErr := s.credentials.Clear(); clearErr != nil {
		logrus.WithField("run_id", runID).Errorf("failed to remove invalid token: %s", clearErr.Error())
		return
	}
	logrus.WithField("run_id", runID).Warnf("removed invalid token from config file (%s)", uploadErr.Message)
}

func outputName(name, foreground, background string, slackProfile bool) string {
	if name != "" {
		return name + ".png"
	}

	out := stem(background) + "_" + stem(foreground) + ".png"
	if slackProfile {
		out = "slack_profile_" + out
	}
	return out
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
