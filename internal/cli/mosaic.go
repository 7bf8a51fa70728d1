package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

type mosaicOptions struct {
	gridSize    int
	output      string
	surfaceSize int
}

func newMosaicCmd(root *rootOptions) *cobra.Command {
	opts := &mosaicOptions{}

	cmd := &cobra.Command{
		Use:   "mosaic <image>",
		Short: "Render the grid samples of an image as a flat-tile mosaic",
		Long: `Sample an image at the center of every tile of an NxN grid and write the
samples as a PNG mosaic the size of the sample surface.

Examples:
  # 4x4 mosaic at the default surface size
  palette-tools-mcp mosaic -o mosaic.png wallpaper.jpg

  # 8x8 mosaic on a 256 pixel surface
  palette-tools-mcp mosaic --grid 8 --surface 256 -o mosaic.png wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMosaic(root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.gridSize, "grid", "g", 4, "number of rows and columns")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file")
	cmd.Flags().IntVar(&opts.surfaceSize, "surface", 0, "sample surface size in pixels (default: configured size)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runMosaic(root *rootOptions, opts *mosaicOptions, imagePath string) error {
	size := root.surface(opts.surfaceSize)

	src, err := imaging.NewImageCache().Surface(imagePath, size)
	if err != nil {
		return err
	}
	colors, err := palette.Sample(src, opts.gridSize)
	if err != nil {
		return err
	}
	img, err := imaging.MosaicImage(colors, opts.gridSize, size)
	if err != nil {
		return err
	}
	if err := imaging.SaveImage(img, opts.output); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"path": opts.output,
		"grid": opts.gridSize,
		"size": size,
	}).Info("wrote mosaic")
	return nil
}
