// palette-tools-mcp serves color palette extraction over MCP and from the
// command line.
//
// Build information is injected with -ldflags, for example:
//
//	go build -ldflags "-X github.com/ironsheep/palette-tools-mcp/internal/version.Version=1.0.0" ./cmd/palette-mcp
package main

import "github.com/ironsheep/palette-tools-mcp/internal/cli"

func main() {
	cli.Execute()
}
