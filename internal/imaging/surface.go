package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

const (
	// DefaultSurfaceSize is the side length of the square sample surface.
	DefaultSurfaceSize = 400

	// MaxSurfaceSize bounds the sample surface and mosaic side length.
	MaxSurfaceSize = 4096
)

// Cover scales img so that it completely covers a size x size square and
// crops the overflow equally from both sides, like CSS object-fit: cover.
//
// The scale factor is max(size/width, size/height). Resampling uses the
// Lanczos filter. An image that is already size x size is copied unchanged.
//
// Returns an error wrapping palette.ErrInvalidInput if size is not in
// [1, MaxSurfaceSize] or the image has zero area.
func Cover(img image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 || size > MaxSurfaceSize {
		return nil, fmt.Errorf("surface size %d must be in [1, %d]: %w", size, MaxSurfaceSize, palette.ErrInvalidInput)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("image has zero area (%dx%d): %w", bounds.Dx(), bounds.Dy(), palette.ErrInvalidInput)
	}

	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), nil
}

// NewSurface normalizes img with Cover and wraps the result for sampling.
func NewSurface(img image.Image, size int) (*palette.ImageSource, error) {
	covered, err := Cover(img, size)
	if err != nil {
		return nil, err
	}
	return palette.NewImageSource(covered), nil
}

// Surface loads path through the cache and normalizes it to a sample surface.
func (c *ImageCache) Surface(path string, size int) (*palette.ImageSource, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}

	src, err := NewSurface(img, size)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"path":   path,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
		"size":   size,
	}).Debug("normalized image to sample surface")
	return src, nil
}

// ExtractPalette runs the standard palette pipeline on the image at path.
func (c *ImageCache) ExtractPalette(path string, size int) (*PaletteResult, error) {
	src, err := c.Surface(path, size)
	if err != nil {
		return nil, err
	}

	result, err := palette.Compute(src)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette from %s: %w", path, err)
	}
	return NewPaletteResult(result, size), nil
}
