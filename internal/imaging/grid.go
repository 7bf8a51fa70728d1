package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// DefaultOverlayColor is the grid line color used when none is given.
const DefaultOverlayColor = "#FF000080"

// SamplePoint is one pixel read by the sampler, with its tile index.
type SamplePoint struct {
	Index int         `json:"index"` // row-major tile index
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// SampleOverlayResult contains the annotated surface and the points it shows.
type SampleOverlayResult struct {
	RenderResult
	GridSize int           `json:"grid_size"`
	Points   []SamplePoint `json:"points"`
}

// SampleOverlay draws the tile grid over a sample surface and rings every
// pixel the sampler reads for that grid.
//
// Tile edges are drawn in gridColorHex ("#RRGGBB" or "#RRGGBBAA", blended
// over the surface). Each ring is drawn in the complement of the sampled
// color and leaves the sampled pixel itself untouched. With showLabels the
// row-major tile index is printed in the top-left corner of every tile.
func SampleOverlay(surface image.Image, gridSize int, showLabels bool, gridColorHex string) (*SampleOverlayResult, error) {
	src := palette.NewImageSource(surface)
	width, height := src.Size()

	points, err := palette.SamplePoints(width, height, gridSize)
	if err != nil {
		return nil, err
	}
	colors, err := palette.Sample(src, gridSize)
	if err != nil {
		return nil, err
	}

	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid grid color %q: %w", gridColorHex, err)
	}

	// Copy onto a zero-origin canvas
	result := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), surface, surface.Bounds().Min, draw.Src)

	line := image.NewUniform(gridColor)
	for i := 1; i < gridSize; i++ {
		x := i * width / gridSize
		y := i * height / gridSize
		draw.Draw(result, image.Rect(x, 0, x+1, height), line, image.Point{}, draw.Over)
		draw.Draw(result, image.Rect(0, y, width, y+1), line, image.Point{}, draw.Over)
	}

	out := make([]SamplePoint, len(points))
	for i, p := range points {
		drawRing(result, p.X, p.Y, 2, colors[i].Complement())
		out[i] = SamplePoint{Index: i, X: p.X, Y: p.Y, Color: NewColorResult(colors[i])}
	}

	if showLabels {
		labelColor := color.RGBA{255, 255, 255, 255}
		bgColor := color.RGBA{0, 0, 0, 180}

		for i := range points {
			row, col := i/gridSize, i%gridSize
			drawLabel(result, col*width/gridSize+2, row*height/gridSize+2, strconv.Itoa(i), labelColor, bgColor)
		}
	}

	rendered, err := encodePNG(result)
	if err != nil {
		return nil, err
	}
	return &SampleOverlayResult{
		RenderResult: *rendered,
		GridSize:     gridSize,
		Points:       out,
	}, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	switch len(hex) {
	case 6:
		c, err := palette.FromHex(hex)
		if err != nil {
			return color.NRGBA{}, err
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	case 8:
		c, err := palette.FromHex(hex[:6])
		if err != nil {
			return color.NRGBA{}, err
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, err
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}
}

// drawRing outlines the square of the given radius around (cx, cy).
func drawRing(img *image.RGBA, cx, cy, radius int, c color.Color) {
	bounds := img.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx != -radius && dx != radius && dy != -radius && dy != radius {
				continue
			}
			if p := image.Pt(cx+dx, cy+dy); p.In(bounds) {
				img.Set(p.X, p.Y, c)
			}
		}
	}
}

// drawLabel draws a simple text label at the given position
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	// Simple 3x5 pixel font for digits
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Draw background
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if p := image.Pt(x+dx, y+dy); p.In(bounds) {
				img.Set(p.X, p.Y, bg)
			}
		}
	}

	// Draw text
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				if p := image.Pt(cx+col, y+row); p.In(bounds) {
					img.Set(p.X, p.Y, fg)
				}
			}
		}
		cx += charWidth
	}
}
