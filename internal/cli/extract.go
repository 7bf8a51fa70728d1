package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

// Output formats for extract.
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatJSON = "json"
)

type extractOptions struct {
	format      string
	output      string
	surfaceSize int
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a color palette from an image",
		Long: `Extract a color palette from an image.

The palette is ranked brightest first and followed by the brightest and
darkest colors and the complement of every ranked color.

Supported image formats: PNG, JPEG, GIF, WebP

Examples:
  # Print the palette as hex
  palette-tools-mcp extract wallpaper.jpg

  # Print rgb(r, g, b) values
  palette-tools-mcp extract -f rgb wallpaper.jpg

  # Save the full result as JSON
  palette-tools-mcp extract -f json -o palette.json wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHex, "output format (hex, rgb, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&opts.surfaceSize, "surface", 0, "sample surface size in pixels (default: configured size)")

	return cmd
}

func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, imagePath string) error {
	size := root.surface(opts.surfaceSize)

	result, err := imaging.NewImageCache().ExtractPalette(imagePath, size)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":   imagePath,
		"colors": result.Count,
	}).Debug("extracted palette")

	output, err := formatPalette(result, opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.WithField("path", opts.output).Info("wrote palette")
	return nil
}

// formatPalette renders result as hex or rgb text, or as indented JSON.
func formatPalette(result *imaging.PaletteResult, format string) (string, error) {
	var render func(imaging.ColorResult) string
	switch format {
	case formatHex:
		render = func(c imaging.ColorResult) string { return c.Hex }
	case formatRGB:
		render = func(c imaging.ColorResult) string { return c.RGB.String() }
	case formatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}

	single := func(c *imaging.ColorResult) string {
		if c == nil {
			return "none"
		}
		return render(*c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette (%d colors):\n", result.Count)
	for _, c := range result.Ranked {
		fmt.Fprintf(&b, "  %s\n", render(c))
	}
	fmt.Fprintf(&b, "Brightest: %s\n", single(result.Brightest))
	fmt.Fprintf(&b, "Darkest: %s\n", single(result.Darkest))
	b.WriteString("Complements:\n")
	for _, c := range result.Complements {
		fmt.Fprintf(&b, "  %s\n", render(c))
	}
	return b.String(), nil
}
