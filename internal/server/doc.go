// Package server implements the MCP (Model Context Protocol) server for palette extraction tools.
//
// This package provides a JSON-RPC 2.0 server that exposes palette extraction
// through the MCP protocol, so MCP-compatible clients can pull representative
// colors out of images and work with color lists.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//
// Palette Extraction:
//   - palette_extract: Full pipeline (sample 2x2 and 4x4, dedupe, rank, complements)
//   - palette_sample_grid: Raw tile-center samples for one grid
//   - palette_mosaic: Grid samples rendered as a PNG mosaic
//   - palette_sample_overlay: Surface annotated with the tile grid and sample points
//
// Color List Operations:
//   - palette_swatch: Render colors as a PNG strip
//   - palette_dedupe: Drop near-duplicates, first occurrence wins
//   - palette_rank: Sort brightest first
//   - palette_complements: 255 minus each channel
//
// Color arguments are strings in hex ("#ff8800") or "rgb(255, 136, 0)" form.
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path.
// Every palette tool fits the cached image to a square sample surface
// (400x400 unless configured otherwise) before sampling.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.WithSurfaceSize(400))
//	if err := srv.Run(); err != nil {
//	    logrus.Fatal(err)
//	}
package server
