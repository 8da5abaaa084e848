package service

import (
	"context"
	"io"

	"github.com/dailyavatar/dailyavatar/internal/entity"
	"github.com/dailyavatar/dailyavatar/internal/library"
	"github.com/dailyavatar/dailyavatar/internal/pkg/credentials"
	"github.com/dailyavatar/dailyavatar/internal/pkg/processor"
	"github.com/dailyavatar/dailyavatar/internal/transport"
)

type AvatarService interface {
	Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResult, error)
	SetupToken(in io.Reader, out io.Writer) error
}

type avatarService struct {
	library     library.ImageLibrary
	processor   processor.ImageProcessor
	uploader    transport.Uploader
	credentials credentials.Store
	profileSize int
}

func NewAvatarService(lib library.ImageLibrary, proc processor.ImageProcessor, uploader transport.Uploader, creds credentials.Store, profileSize int) AvatarService {
	return &avatarService{
		library:     lib,
		processor:   proc,
		uploader:    uploader,
		credentials: creds,
		profileSize: profileSize,
	}
}
