package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImages loads every path and returns the images in call order. If any
// image fails to load, the error names the offending path and no images are
// returned. Supported formats are whatever image decoders the program has
// registered (the toolkit examples register PNG and JPEG).
func LoadImages(paths ...string) ([]*ebiten.Image, error) {
	images := make([]*ebiten.Image, 0, len(paths))
	for _, path := range paths {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load image %q: %w", path, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// LoadImage loads a single image, with the same error contract as LoadImages.
func LoadImage(path string) (*ebiten.Image, error) {
	images, err := LoadImages(path)
	if err != nil {
		return nil, err
	}
	return images[0], nil
}
