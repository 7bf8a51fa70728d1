package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  float64
	}{
		{"white", RGB(255, 255, 255), 255},
		{"black", RGB(0, 0, 0), 0},
		{"red", RGB(255, 0, 0), 76.245},
		{"green", RGB(0, 255, 0), 149.685},
		{"blue", RGB(0, 0, 255), 29.07},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, tt.color.Brightness(), 1e-9)
		})
	}
}

func TestComplement(t *testing.T) {
	require.Equal(t, RGB(0, 255, 255), RGB(255, 0, 0).Complement())
	require.Equal(t, RGB(155, 127, 0), RGB(100, 128, 255).Complement())

	for _, v := range []uint8{0, 1, 64, 127, 128, 200, 254, 255} {
		c := RGB(v, 255-v, v/2)
		require.Equal(t, c, c.Complement().Complement(), "complement must be an involution for %v", c)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{RGB(255, 128, 64), "ff8040"},
		{RGB(0, 0, 0), "000000"},
		{RGB(1, 2, 3), "010203"},
		{RGB(255, 255, 255), "ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.color.Hex())
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 51 {
				c := RGB(uint8(r), uint8(g), uint8(b))
				got, err := FromHex(c.Hex())
				require.NoError(t, err)
				require.Equal(t, c, got)
			}
		}
	}
}

func TestFromHex(t *testing.T) {
	got, err := FromHex("#FF8040")
	require.NoError(t, err)
	require.Equal(t, RGB(255, 128, 64), got)

	got, err = FromHex("  0a0B0c ")
	require.NoError(t, err)
	require.Equal(t, RGB(10, 11, 12), got)
}

func TestFromHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "fff", "#ff00", "ff00000", "gg0000", "#12345z", "+10000"} {
		t.Run(in, func(t *testing.T) {
			_, err := FromHex(in)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"rgb(255, 0, 0)", RGB(255, 0, 0)},
		{"RGB(1,2,3)", RGB(1, 2, 3)},
		{" rgb( 10 , 20 , 30 ) ", RGB(10, 20, 30)},
		{"#00ff00", RGB(0, 255, 0)},
		{"0000ff", RGB(0, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"rgb(256, 0, 0)", "rgb(1, 2)", "rgb(1, 2, 3", "rgb(a, b, c)", "rgb(-1, 0, 0)", "red"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseColors(t *testing.T) {
	colors, err := ParseColors([]string{"#ffffff", "rgb(0, 0, 0)"})
	require.NoError(t, err)
	require.Equal(t, []Color{RGB(255, 255, 255), RGB(0, 0, 0)}, colors)

	_, err = ParseColors([]string{"#ffffff", "nope"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Contains(t, err.Error(), "color 1")
}

func TestColorString(t *testing.T) {
	require.Equal(t, "rgb(255, 0, 128)", RGB(255, 0, 128).String())

	// String output is accepted back by ParseColor.
	c, err := ParseColor(RGB(12, 34, 56).String())
	require.NoError(t, err)
	require.Equal(t, RGB(12, 34, 56), c)
}

func TestColorImplementsColorModel(t *testing.T) {
	var c color.Color = RGB(255, 128, 0)
	got := color.RGBAModel.Convert(c).(color.RGBA)
	require.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, got)
}

func TestHSL(t *testing.T) {
	h, s, l := RGB(255, 0, 0).HSL()
	require.InDelta(t, 0, h, 1e-6)
	require.InDelta(t, 1, s, 1e-6)
	require.InDelta(t, 0.5, l, 1e-6)

	_, s, _ = RGB(128, 128, 128).HSL()
	require.InDelta(t, 0, s, 1e-6)
}
