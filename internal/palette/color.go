package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidInput is wrapped by every error returned from this package.
var ErrInvalidInput = errors.New("invalid input")

// Color is an immutable RGB triple with 8-bit channels.
//
// Two Colors with the same channels are interchangeable; the zero value is black.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGB is a convenience constructor.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Brightness returns the ITU-R BT.601 luma of c in the range [0, 255]:
//
//	(R*299 + G*587 + B*114) / 1000
func (c Color) Brightness() float64 {
	sum := int(c.R)*299 + int(c.G)*587 + int(c.B)*114
	return float64(sum) / 1000
}

// Complement returns the per-channel inversion 255-v.
func (c Color) Complement() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Hex returns c as six lowercase hex digits without a leading '#'.
func (c Color) Hex() string {
	return strings.TrimPrefix(c.colorful().Hex(), "#")
}

// String formats c the way CSS writes it, e.g. "rgb(255, 0, 0)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns hue in degrees (0-360) and saturation and lightness in [0, 1].
// These values are for display only and play no part in the pipeline.
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromHex parses a six-digit hex color such as "ff8040" or "#FF8040".
func FromHex(hex string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("hex color %q must have 6 digits: %w", hex, ErrInvalidInput)
	}
	for _, ch := range digits {
		if !isHexDigit(ch) {
			return Color{}, fmt.Errorf("hex color %q contains non-hex digit %q: %w", hex, ch, ErrInvalidInput)
		}
	}

	parsed, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %v: %w", hex, err, ErrInvalidInput)
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ParseColor accepts either hex notation (see FromHex) or the CSS functional
// notation "rgb(r, g, b)" with decimal channels in [0, 255].
func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "rgb(") {
		return FromHex(trimmed)
	}
	if !strings.HasSuffix(lower, ")") {
		return Color{}, fmt.Errorf("color %q: missing closing parenthesis: %w", s, ErrInvalidInput)
	}

	parts := strings.Split(lower[len("rgb("):len(lower)-1], ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("color %q: expected 3 channels, got %d: %w", s, len(parts), ErrInvalidInput)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: channel %d: %v: %w", s, i, err, ErrInvalidInput)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseColors parses every entry with ParseColor, failing on the first bad one.
func ParseColors(values []string) ([]Color, error) {
	colors := make([]Color, 0, len(values))
	for i, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
