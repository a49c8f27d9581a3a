package game

import (
	"errors"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
)

// imageCache loads gallery images on first use. A file that fails to load is
// reported once and then drawn as a placeholder.
type imageCache struct {
	logger *log.Logger
	images map[string]*ebiten.Image
	failed map[string]bool
}

func newImageCache(logger *log.Logger) *imageCache {
	return &imageCache{
		logger: logger,
		images: map[string]*ebiten.Image{},
		failed: map[string]bool{},
	}
}

func (c *imageCache) get(path string) *ebiten.Image {
	if img, ok := c.images[path]; ok {
		return img
	}
	if c.failed[path] {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		c.logger.Printf("gallery image %s: %v", path, err)
		c.failed[path] = true
		return nil
	}
	c.images[path] = img
	return img
}

func (g *Game) openImages() error {
	paths, err := zenity.SelectFileMultiple(
		zenity.Title("Add Gallery Images"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select gallery images: %w", err)
	}
	g.addImages(paths...)
	return nil
}
