// Package cli provides the command-line interface for palette-tools-mcp.
//
// Run without a subcommand the binary serves MCP over stdio. The extract and
// mosaic subcommands run the same pipeline directly on a file.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/logging"
	"github.com/ironsheep/palette-tools-mcp/internal/server"
	"github.com/ironsheep/palette-tools-mcp/internal/version"
)

var log = logrus.WithField("component", "cli")

// rootOptions is shared by every command in one tree.
type rootOptions struct {
	logLevel    string
	surfaceSize int

	cfg config.Config
}

// surface returns the --surface flag when set, otherwise the configured size.
// Only 0 means unset; negative sizes are passed through and rejected later.
func (o *rootOptions) surface(flag int) int {
	if flag != 0 {
		return flag
	}
	return o.cfg.SurfaceSize
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   version.Name,
		Short: "MCP server that extracts color palettes from images",
		Long: `palette-tools-mcp extracts a small, representative color palette from an image.

The image is fitted to a square surface, sampled at tile centers on 2x2 and
4x4 grids, near-duplicate colors are dropped, and the rest are ranked by
perceived brightness together with their complements.

Without a subcommand it serves these tools over MCP (JSON-RPC on stdin/stdout).
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  PALETTE_MCP_LOG_LEVEL     log level (default: info)
  PALETTE_MCP_LOG_FORMAT    text or json (default: text)
  PALETTE_MCP_SURFACE_SIZE  sample surface side in pixels (default: 400)
  PALETTE_MCP_ENV_FILE      .env file to load (default: ./.env if present)`,
		Version:      version.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	rootCmd.Flags().IntVar(&opts.surfaceSize, "surface", 0, "sample surface size in pixels (overrides "+config.EnvSurfaceSize+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newMosaicCmd(opts))

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and configures logging.
// Logs go to the command's stderr; stdout carries MCP traffic or command output.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		return err
	}

	o.cfg = cfg
	if cfg.LoadedEnvFile == "" {
		log.Debug("no .env file found, using process environment only")
	} else {
		log.WithField("path", cfg.LoadedEnvFile).Debug("loaded env file")
	}
	log.WithFields(logrus.Fields{
		"version":      version.Version,
		"log_level":    cfg.LogLevel,
		"surface_size": cfg.SurfaceSize,
	}).Debug("configuration loaded")
	return nil
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	size := opts.surface(opts.surfaceSize)
	if size <= 0 || size > imaging.MaxSurfaceSize {
		return fmt.Errorf("surface size must be in [1, %d], got %d", imaging.MaxSurfaceSize, size)
	}
	log.WithFields(logrus.Fields{
		"version":    version.Version,
		"build_time": version.BuildTime,
		"git_commit": version.GitCommit,
	}).Info("starting MCP server")

	srv := server.New(server.WithSurfaceSize(size))
	if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
