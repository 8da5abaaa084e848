package library

import (
	"image"
	"math/rand"

	"github.com/dailyavatar/dailyavatar/internal/pkg/storage"
)

type ImageLibrary interface {
	PickRandom(dir string) (string, error)
	SaveOutput(name string, img image.Image) (string, error)
}

type fileImageLibrary struct {
	output storage.FileStorage
	rng    *rand.Rand
}
