package library

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/dailyavatar/dailyavatar/internal/entity"
	"github.com/dailyavatar/dailyavatar/internal/pkg/processor"
	"github.com/dailyavatar/dailyavatar/internal/pkg/storage"
)

// NewImageLibrary builds a library saving results through the given storage.
// The random source is injected so callers (and tests) control the seed.
func NewImageLibrary(output storage.FileStorage, rng *rand.Rand) ImageLibrary {
	return &fileImageLibrary{output: output, rng: rng}
}

// PickRandom returns the path of a PNG chosen uniformly at random from dir.
// A missing directory is created rather than treated as an error, but an
// empty one still fails with entity.ErrNoImages.
func (l *fileImageLibrary) PickRandom(dir string) (string, error) {
	created := false
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		created = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".png") {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		if created {
			return "", fmt.Errorf("%w in %q (directory was created, add some PNG images to it)", entity.ErrNoImages, dir)
		}
		return "", fmt.Errorf("%w in %q", entity.ErrNoImages, dir)
	}

	return filepath.Join(dir, names[l.rng.Intn(len(names))]), nil
}

// SaveOutput encodes the image as PNG under the output directory and
// returns the absolute path of the saved file.
func (l *fileImageLibrary) SaveOutput(name string, img image.Image) (string, error) {
	buf, err := processor.EncodePNG(img)
	if err != nil {
		return "", err
	}

	if err := l.output.Save(name, buf); err != nil {
		return "", err
	}

	return filepath.Abs(l.output.FullPath(name))
}
