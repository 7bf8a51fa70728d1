package palette

import (
	"fmt"
	"image"
	"image/color"
)

// PixelSource gives read access to single pixels of a width x height surface.
//
// Coordinates are 0-based relative to the surface origin. Implementations must
// return an error wrapping ErrInvalidInput for coordinates outside the surface.
// The alpha channel of the returned color is ignored by this package.
type PixelSource interface {
	Size() (width, height int)
	PixelAt(x, y int) (color.RGBA, error)
}

// ImageSource adapts an image.Image to PixelSource.
//
// Coordinates are translated by the image's Bounds().Min, so sub-images and
// images with a non-zero origin behave like a surface starting at (0,0).
type ImageSource struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageSource wraps img. The image is read lazily and must not be mutated
// while the source is in use.
func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{img: img, bounds: img.Bounds()}
}

// Size returns the width and height of the wrapped image.
func (s *ImageSource) Size() (width, height int) {
	return s.bounds.Dx(), s.bounds.Dy()
}

// Image returns the wrapped image.
func (s *ImageSource) Image() image.Image {
	return s.img
}

// PixelAt returns the 8-bit straight-alpha color at (x, y). Translucent
// pixels keep their stored RGB instead of being premultiplied by alpha.
func (s *ImageSource) PixelAt(x, y int) (color.RGBA, error) {
	w, h := s.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return color.RGBA{}, fmt.Errorf("coordinates (%d,%d) outside %dx%d surface: %w", x, y, w, h, ErrInvalidInput)
	}

	c := color.NRGBAModel.Convert(s.img.At(x+s.bounds.Min.X, y+s.bounds.Min.Y)).(color.NRGBA)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
