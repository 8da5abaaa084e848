package transport

import (
	"context"
	"image"
)

type Uploader interface {
	Upload(ctx context.Context, img image.Image, token string) error
}
