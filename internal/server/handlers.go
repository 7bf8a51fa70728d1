package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "palette_extract", "palette_rank").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ColorListResult is returned by the tools that transform a color list.
type ColorListResult struct {
	Colors []imaging.ColorResult `json:"colors"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) (resp *MCPResponse) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	// A failing tool must not take the server down with it.
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("tool", params.Name).Errorf("tool panicked: %v", r)
			resp = s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", fmt.Sprintf("internal error: %v", r))
		}
	}()

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithError(err).WithField("tool", params.Name).Warn("tool execution failed")
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache or parses color strings as needed
//  4. Calls the appropriate imaging/palette function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Palette Extraction
	case "palette_extract":
		return s.handlePaletteExtract(args)
	case "palette_sample_grid":
		return s.handlePaletteSampleGrid(args)
	case "palette_mosaic":
		return s.handlePaletteMosaic(args)
	case "palette_sample_overlay":
		return s.handlePaletteSampleOverlay(args)

	// Color List Operations
	case "palette_swatch":
		return s.handlePaletteSwatch(args)
	case "palette_dedupe":
		return s.handleColorList(args, palette.Dedupe)
	case "palette_rank":
		return s.handleColorList(args, palette.Rank)
	case "palette_complements":
		return s.handleColorList(args, palette.Complements)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// resolveSurfaceSize returns the requested size or the server default. Only 0
// means unset; negative and oversized values fail in imaging.Cover.
func (s *Server) resolveSurfaceSize(requested int) int {
	if requested == 0 {
		return s.surfaceSize
	}
	return requested
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Palette Extraction Handlers ===

type paletteExtractArgs struct {
	Path        string `json:"path"`
	SurfaceSize int    `json:"surface_size"`
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.ExtractPalette(a.Path, s.resolveSurfaceSize(a.SurfaceSize))
}

type paletteGridArgs struct {
	Path        string `json:"path"`
	GridSize    int    `json:"grid_size"`
	SurfaceSize int    `json:"surface_size"`
}

// sampleGrid fits the image to its surface and samples one grid.
func (s *Server) sampleGrid(a paletteGridArgs) ([]palette.Color, int, error) {
	size := s.resolveSurfaceSize(a.SurfaceSize)
	src, err := s.cache.Surface(a.Path, size)
	if err != nil {
		return nil, 0, err
	}
	colors, err := palette.Sample(src, a.GridSize)
	if err != nil {
		return nil, 0, err
	}
	return colors, size, nil
}

func (s *Server) handlePaletteSampleGrid(args json.RawMessage) (interface{}, error) {
	var a paletteGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSize == 0 {
		a.GridSize = 2
	}

	colors, _, err := s.sampleGrid(a)
	if err != nil {
		return nil, err
	}
	return &imaging.GridResult{GridSize: a.GridSize, Colors: imaging.NewColorResults(colors)}, nil
}

func (s *Server) handlePaletteMosaic(args json.RawMessage) (interface{}, error) {
	var a paletteGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSize == 0 {
		a.GridSize = 4
	}

	colors, size, err := s.sampleGrid(a)
	if err != nil {
		return nil, err
	}
	return imaging.RenderMosaic(colors, a.GridSize, size)
}

type paletteSampleOverlayArgs struct {
	Path        string `json:"path"`
	GridSize    int    `json:"grid_size"`
	SurfaceSize int    `json:"surface_size"`
	ShowLabels  bool   `json:"show_labels"`
	GridColor   string `json:"grid_color"`
}

func (s *Server) handlePaletteSampleOverlay(args json.RawMessage) (interface{}, error) {
	var a paletteSampleOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSize == 0 {
		a.GridSize = 4
	}
	if a.GridColor == "" {
		a.GridColor = imaging.DefaultOverlayColor
	}

	src, err := s.cache.Surface(a.Path, s.resolveSurfaceSize(a.SurfaceSize))
	if err != nil {
		return nil, err
	}
	return imaging.SampleOverlay(src.Image(), a.GridSize, a.ShowLabels, a.GridColor)
}

// === Color List Handlers ===

type colorListArgs struct {
	Colors   []string `json:"colors"`
	TileSize int      `json:"tile_size"`
}

func parseColorListArgs(args json.RawMessage) (colorListArgs, []palette.Color, error) {
	var a colorListArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, nil, err
	}
	colors, err := palette.ParseColors(a.Colors)
	if err != nil {
		return a, nil, err
	}
	return a, colors, nil
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	a, colors, err := parseColorListArgs(args)
	if err != nil {
		return nil, err
	}
	if a.TileSize == 0 {
		a.TileSize = imaging.DefaultSwatchTileSize
	}
	return imaging.RenderSwatch(colors, a.TileSize)
}

func (s *Server) handleColorList(args json.RawMessage, op func([]palette.Color) []palette.Color) (interface{}, error) {
	_, colors, err := parseColorListArgs(args)
	if err != nil {
		return nil, err
	}
	return &ColorListResult{Colors: imaging.NewColorResults(op(colors))}, nil
}
