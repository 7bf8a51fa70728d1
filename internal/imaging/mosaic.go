package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

const (
	// DefaultSwatchTileSize is the side length of one swatch tile in pixels.
	DefaultSwatchTileSize = 64

	// MaxSwatchTileSize bounds the swatch tile side.
	MaxSwatchTileSize = 512

	// MaxSwatchWidth bounds the total width of a swatch strip.
	MaxSwatchWidth = 16384
)

// RenderResult contains a rendered PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// MosaicImage paints a size x size image made of gridSize x gridSize flat
// tiles. colors must be row-major, as returned by palette.Sample.
//
// Tile edges are placed at col*size/gridSize so the tiles cover the whole
// image even when size is not a multiple of gridSize.
func MosaicImage(colors []palette.Color, gridSize, size int) (*image.RGBA, error) {
	if gridSize <= 0 || gridSize > palette.MaxGridSize {
		return nil, fmt.Errorf("grid size %d must be in [1, %d]: %w", gridSize, palette.MaxGridSize, palette.ErrInvalidInput)
	}
	if size > MaxSurfaceSize {
		return nil, fmt.Errorf("mosaic size %d exceeds %d: %w", size, MaxSurfaceSize, palette.ErrInvalidInput)
	}
	if size < gridSize {
		return nil, fmt.Errorf("mosaic size %d must be at least the grid size %d: %w", size, gridSize, palette.ErrInvalidInput)
	}
	if len(colors) != gridSize*gridSize {
		return nil, fmt.Errorf("mosaic %dx%d needs %d colors, got %d: %w",
			gridSize, gridSize, gridSize*gridSize, len(colors), palette.ErrInvalidInput)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i, c := range colors {
		row, col := i/gridSize, i%gridSize
		tile := image.Rect(
			col*size/gridSize, row*size/gridSize,
			(col+1)*size/gridSize, (row+1)*size/gridSize,
		)
		draw.Draw(img, tile, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img, nil
}

// RenderMosaic draws the mosaic and encodes it as base64 PNG.
func RenderMosaic(colors []palette.Color, gridSize, size int) (*RenderResult, error) {
	img, err := MosaicImage(colors, gridSize, size)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// SwatchImage paints colors left to right as tileSize x tileSize squares.
func SwatchImage(colors []palette.Color, tileSize int) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch needs at least one color: %w", palette.ErrInvalidInput)
	}
	if tileSize <= 0 || tileSize > MaxSwatchTileSize {
		return nil, fmt.Errorf("tile size %d must be in [1, %d]: %w", tileSize, MaxSwatchTileSize, palette.ErrInvalidInput)
	}
	if len(colors) > MaxSwatchWidth/tileSize {
		return nil, fmt.Errorf("swatch of %d colors at %dpx exceeds %dpx: %w",
			len(colors), tileSize, MaxSwatchWidth, palette.ErrInvalidInput)
	}

	img := image.NewRGBA(image.Rect(0, 0, tileSize*len(colors), tileSize))
	for i, c := range colors {
		tile := image.Rect(i*tileSize, 0, (i+1)*tileSize, tileSize)
		draw.Draw(img, tile, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img, nil
}

// RenderSwatch draws the swatch strip and encodes it as base64 PNG.
func RenderSwatch(colors []palette.Color, tileSize int) (*RenderResult, error) {
	img, err := SwatchImage(colors, tileSize)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// SaveImage writes img to path as PNG.
func SaveImage(img image.Image, path string) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func encodePNG(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &RenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
