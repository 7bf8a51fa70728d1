// Package version holds build information injected with -ldflags, e.g.
//
//	-X github.com/ironsheep/palette-tools-mcp/internal/version.Version=1.2.0
package version

import "fmt"

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Name is the program name reported to MCP clients and on the command line.
const Name = "palette-tools-mcp"

// String returns the multi-line version banner printed by the version command.
func String() string {
	return fmt.Sprintf("%s %s\n  Build time: %s\n  Git commit: %s", Name, Version, BuildTime, GitCommit)
}
