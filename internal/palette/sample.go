package palette

import (
	"fmt"
	"image"
)

// MaxGridSize bounds the rows and columns of a sample grid.
const MaxGridSize = 256

// SamplePoints returns the pixel read for every tile of a gridSize x gridSize
// grid over a width x height area, in row-major order.
//
// Each tile is represented by its geometric center,
// ((col+0.5)*tileWidth, (row+0.5)*tileHeight), truncated to integer pixel
// coordinates.
func SamplePoints(width, height, gridSize int) ([]image.Point, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("grid size %d must be positive: %w", gridSize, ErrInvalidInput)
	}
	if gridSize > MaxGridSize {
		return nil, fmt.Errorf("grid size %d exceeds %d: %w", gridSize, MaxGridSize, ErrInvalidInput)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixel source has zero area (%dx%d): %w", width, height, ErrInvalidInput)
	}

	tileWidth := float64(width) / float64(gridSize)
	tileHeight := float64(height) / float64(gridSize)

	points := make([]image.Point, 0, gridSize*gridSize)
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			points = append(points, image.Point{
				X: int((float64(col) + 0.5) * tileWidth),
				Y: int((float64(row) + 0.5) * tileHeight),
			})
		}
	}
	return points, nil
}

// Sample reads one color per tile of a gridSize x gridSize grid laid over src.
//
// Each tile is represented by the single pixel at SamplePoints. No averaging
// is done. The result has gridSize² colors in row-major order (rows outer,
// columns inner).
//
// Returns an error wrapping ErrInvalidInput if gridSize is not in
// [1, MaxGridSize], the source has zero area, or the source rejects a
// coordinate.
func Sample(src PixelSource, gridSize int) ([]Color, error) {
	width, height := src.Size()
	points, err := SamplePoints(width, height, gridSize)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, 0, len(points))
	for i, p := range points {
		px, err := src.PixelAt(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample tile (%d,%d) of %dx%d grid: %w",
				i%gridSize, i/gridSize, gridSize, gridSize, err)
		}
		colors = append(colors, Color{R: px.R, G: px.G, B: px.B})
	}

	return colors, nil
}
