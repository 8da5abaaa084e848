package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/imaging"

	"github.com/dailyavatar/dailyavatar/internal/entity"
)

type ImageProcessor interface {
	Composite(foregroundPath, backgroundPath string) (image.Image, error)
	FitToProfile(img image.Image, size int) image.Image
}

type imageProcessor struct {
	fill color.NRGBA
}

func NewImageProcessor(fillColor string) (ImageProcessor, error) {
	fill, err := parseHexColor(fillColor)
	if err != nil {
		return nil, err
	}
	return &imageProcessor{fill: fill}, nil
}

// Composite layers the foreground PNG over the background PNG. The
// background is the canvas: the foreground is scaled down (never up) to fit
// inside it, centered, and alpha-blended on top.
func (p *imageProcessor) Composite(foregroundPath, backgroundPath string) (image.Image, error) {
	foreground, err := p.loadImage(foregroundPath)
	if err != nil {
		return nil, err
	}

	background, err := p.loadImage(backgroundPath)
	if err != nil {
		return nil, err
	}

	canvas := imaging.Clone(background)
	bgWidth := canvas.Bounds().Dx()
	bgHeight := canvas.Bounds().Dy()

	fgBounds := foreground.Bounds()
	if fgBounds.Dx() > bgWidth || fgBounds.Dy() > bgHeight {
		foreground = imaging.Fit(foreground, bgWidth, bgHeight, imaging.Lanczos)
		fgBounds = foreground.Bounds()
	}

	offset := image.Pt((bgWidth-fgBounds.Dx())/2, (bgHeight-fgBounds.Dy())/2)

	return imaging.Overlay(canvas, foreground, offset, 1.0), nil
}

// FitToProfile crops the image to its largest centered square, resizes it to
// size x size and flattens any transparency against the configured fill.
// Slack profile photos are square and opaque.
func (p *imageProcessor) FitToProfile(img image.Image, size int) image.Image {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	side := width
	if height < width {
		side = height
	}

	square := imaging.CropCenter(img, side, side)
	scaled := imaging.Resize(square, size, size, imaging.Lanczos)

	flat := imaging.New(size, size, p.fill)
	return imaging.Overlay(flat, scaled, image.Pt(0, 0), 1.0)
}

func (p *imageProcessor) loadImage(path string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &entity.DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, &entity.DecodeError{Path: path, Err: err}
	}

	// Clone normalizes every PNG color type to NRGBA, opaque where the
	// source has no alpha channel
	return imaging.Clone(img), nil
}

// EncodePNG renders an image to an in-memory PNG.
func EncodePNG(img image.Image) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}

	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid fill color %q, expected #rrggbb", s)
	}

	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid fill color %q: %v", s, err)
	}
	return c, nil
}
