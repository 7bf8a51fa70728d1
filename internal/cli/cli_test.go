package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/version"
)

// isolate clears configuration from the environment and restores the
// standard logger that the root command reconfigures.
func isolate(t *testing.T) {
	t.Helper()

	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSurfaceSize, "")

	std := logrus.StandardLogger()
	prevOut, prevLevel, prevFormatter := std.Out, std.GetLevel(), std.Formatter
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetLevel(prevLevel)
		std.SetFormatter(prevFormatter)
	})
}

// execute runs a fresh command tree and returns what it wrote.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	isolate(t)

	var outBuf, errBuf bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// writeQuadrantImage saves a 100x100 PNG with red, green, blue and white
// quadrants (top-left, top-right, bottom-left, bottom-right).
func writeQuadrantImage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := color.RGBA{255, 255, 255, 255}
			switch {
			case x < 50 && y < 50:
				c = color.RGBA{255, 0, 0, 255}
			case y < 50:
				c = color.RGBA{0, 255, 0, 255}
			case x < 50:
				c = color.RGBA{0, 0, 255, 255}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "quadrants.png")
	require.NoError(t, imaging.SaveImage(img, path))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, version.Name)
	require.Contains(t, out, "Build time:")
	require.Contains(t, out, "Git commit:")
}

func TestVersionCommand_IgnoresBrokenConfig(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvSurfaceSize, "huge")

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), version.Name)
}

func TestSetup_LogsMissingEnvFile(t *testing.T) {
	path := writeQuadrantImage(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	_, stderr, err := execute(t, "", "--log-level", "debug", "extract", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "no .env file found")
}

func TestExtract_Hex(t *testing.T) {
	path := writeQuadrantImage(t)

	out, _, err := execute(t, "", "extract", path)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Palette (4 colors):",
		"  #ffffff",
		"  #00ff00",
		"  #ff0000",
		"  #0000ff",
		"Brightest: #ffffff",
		"Darkest: #0000ff",
		"Complements:",
		"  #000000",
		"  #ff00ff",
		"  #00ffff",
		"  #ffff00",
	}, "\n") + "\n"
	require.Equal(t, want, out)
}

func TestExtract_RGB(t *testing.T) {
	path := writeQuadrantImage(t)

	out, _, err := execute(t, "", "extract", "--format", "rgb", "--surface", "40", path)
	require.NoError(t, err)
	require.Contains(t, out, "  rgb(255, 255, 255)\n")
	require.Contains(t, out, "Darkest: rgb(0, 0, 255)\n")
	require.Contains(t, out, "  rgb(255, 255, 0)\n")
}

func TestExtract_JSONToFile(t *testing.T) {
	path := writeQuadrantImage(t)
	outPath := filepath.Join(t.TempDir(), "palette.json")

	out, _, err := execute(t, "", "extract", "-f", "json", "-o", outPath, "--surface", "40", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result imaging.PaletteResult
	require.NoError(t, json.Unmarshal(data, &result))
	require.Equal(t, 40, result.SurfaceSize)
	require.Equal(t, 4, result.Count)
	require.Len(t, result.Grids, 2)
	require.NotNil(t, result.Brightest)
	require.Equal(t, "#ffffff", result.Brightest.Hex)
}

func TestExtract_SurfaceFromEnvironment(t *testing.T) {
	path := writeQuadrantImage(t)

	isolate(t)
	t.Setenv(config.EnvSurfaceSize, "48")

	var outBuf bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"extract", "-f", "json", path})
	require.NoError(t, rootCmd.Execute())

	var result imaging.PaletteResult
	require.NoError(t, json.Unmarshal(outBuf.Bytes(), &result))
	require.Equal(t, 48, result.SurfaceSize)
}

func TestExtract_Errors(t *testing.T) {
	path := writeQuadrantImage(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing image argument", []string{"extract"}},
		{"unknown format", []string{"extract", "-f", "yaml", path}},
		{"missing file", []string{"extract", filepath.Join(t.TempDir(), "nope.png")}},
		{"negative surface", []string{"extract", "--surface", "-1", path}},
		{"surface above limit", []string{"extract", "--surface", "100000", path}},
		{"bad log level", []string{"--log-level", "chatty", "extract", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestMosaic_WritesPNG(t *testing.T) {
	path := writeQuadrantImage(t)
	outPath := filepath.Join(t.TempDir(), "mosaic.png")

	_, stderr, err := execute(t, "", "--log-level", "info", "mosaic", "--grid", "2", "--surface", "40", "-o", outPath, path)
	require.NoError(t, err)
	require.Contains(t, stderr, "wrote mosaic")

	img, err := imgio.Open(outPath)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 10, color.RGBA{255, 0, 0, 255}},
		{30, 10, color.RGBA{0, 255, 0, 255}},
		{10, 30, color.RGBA{0, 0, 255, 255}},
		{30, 30, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		r, g, b, a := img.At(tt.x, tt.y).RGBA()
		got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		require.Equal(t, tt.want, got, "pixel (%d,%d)", tt.x, tt.y)
	}
}

func TestMosaic_RequiresOutput(t *testing.T) {
	path := writeQuadrantImage(t)

	_, _, err := execute(t, "", "mosaic", path)
	require.Error(t, err)
}

func TestMosaic_GridLargerThanSurface(t *testing.T) {
	path := writeQuadrantImage(t)

	_, _, err := execute(t, "", "mosaic", "--grid", "8", "--surface", "4", "-o", filepath.Join(t.TempDir(), "m.png"), path)
	require.Error(t, err)
}

func TestRoot_ServesMCP(t *testing.T) {
	stdin := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n")

	out, _, err := execute(t, stdin, "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var init struct {
		ID     int `json:"id"`
		Result struct {
			ServerInfo struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &init))
	require.Equal(t, 1, init.ID)
	require.Equal(t, version.Name, init.Result.ServerInfo.Name)
	require.Contains(t, lines[1], `"id":2`)
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, _, err := execute(t, "", "unexpected")
	require.Error(t, err)
}

func TestRoot_RejectsNegativeSurface(t *testing.T) {
	out, _, err := execute(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`, "--surface", "-1")
	require.Error(t, err)
	require.Empty(t, out)
}
