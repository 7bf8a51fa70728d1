package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is included for display; the palette pipeline itself works on RGB.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
//   - Hex: "#rrggbb" for CSS and clipboard use
//   - RGB: 8-bit components
//   - HSL: perceptual-ish breakdown for humans
//   - Brightness: BT.601 luma used for ranking (0-255)
type ColorResult struct {
	Hex        string        `json:"hex"`
	RGB        palette.Color `json:"rgb"`
	HSL        HSLColor      `json:"hsl"`
	Brightness float64       `json:"brightness"`
}

// NewColorResult builds the multi-format view of c.
func NewColorResult(c palette.Color) ColorResult {
	h, s, l := c.HSL()
	return ColorResult{
		Hex: "#" + c.Hex(),
		RGB: c,
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
		Brightness: c.Brightness(),
	}
}

// NewColorResults maps NewColorResult over colors, preserving order.
func NewColorResults(colors []palette.Color) []ColorResult {
	out := make([]ColorResult, len(colors))
	for i, c := range colors {
		out[i] = NewColorResult(c)
	}
	return out
}

// SampledColor is a single pixel read from an image.
type SampledColor struct {
	X     int         `json:"x"`     // X coordinate that was sampled
	Y     int         `json:"y"`     // Y coordinate that was sampled
	Alpha uint8       `json:"alpha"` // Alpha/opacity (0-255), not part of Color
	Color ColorResult `json:"color"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at the top-left of the image bounds.
// Returns an error if (x, y) is outside the image.
func SampleColor(img image.Image, x, y int) (*SampledColor, error) {
	px, err := palette.NewImageSource(img).PixelAt(x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample color: %w", err)
	}

	return &SampledColor{
		X:     x,
		Y:     y,
		Alpha: px.A,
		Color: NewColorResult(palette.RGB(px.R, px.G, px.B)),
	}, nil
}

// GridResult holds the raw samples of one mosaic grid.
type GridResult struct {
	GridSize int           `json:"grid_size"`
	Colors   []ColorResult `json:"colors"`
}

// PaletteResult is the serializable form of a palette.Result.
//
// Brightest and Darkest are null when no colors survived.
type PaletteResult struct {
	SurfaceSize int           `json:"surface_size"`
	Grids       []GridResult  `json:"grids"`
	Ranked      []ColorResult `json:"ranked"`
	Brightest   *ColorResult  `json:"brightest"`
	Darkest     *ColorResult  `json:"darkest"`
	Complements []ColorResult `json:"complements"`
	Count       int           `json:"count"`
}

// NewPaletteResult converts a pipeline result for output.
func NewPaletteResult(r *palette.Result, surfaceSize int) *PaletteResult {
	grids := make([]GridResult, len(r.Grids))
	for i, g := range r.Grids {
		grids[i] = GridResult{GridSize: g.Size, Colors: NewColorResults(g.Colors)}
	}

	out := &PaletteResult{
		SurfaceSize: surfaceSize,
		Grids:       grids,
		Ranked:      NewColorResults(r.Ranked),
		Complements: NewColorResults(r.Complements),
		Count:       len(r.Ranked),
	}
	if c, ok := r.BrightestColor(); ok {
		res := NewColorResult(c)
		out.Brightest = &res
	}
	if c, ok := r.DarkestColor(); ok {
		res := NewColorResult(c)
		out.Darkest = &res
	}
	return out
}
