package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func surfaceSizeProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Side of the square surface the image is fitted to before sampling (default: server setting, normally 400)",
	}
}

func colorsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Colors as hex (\"#ff8800\" or \"ff8800\") or \"rgb(r, g, b)\" strings",
		"items": map[string]interface{}{
			"type": "string",
		},
	}
}

func colorListSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"colors": colorsProperty(),
		},
		"required": []string{"colors"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel of the original image. Returns hex, RGB, HSL, brightness and alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate of the pixel",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate of the pixel",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Palette Extraction
		{
			Name:        "palette_extract",
			Description: "Extract a color palette from an image. The image is fitted to a square surface, sampled at tile centers on 2x2 and 4x4 grids, near-duplicates are removed, and the result is ranked brightest first with the brightest, darkest and complementary colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty(),
					"surface_size": surfaceSizeProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_sample_grid",
			Description: "Sample one color at the center of each tile of an NxN grid laid over the fitted image. Colors are returned in row-major order without deduplication.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"grid_size": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rows and columns (default: 2)",
						"default":     2,
					},
					"surface_size": surfaceSizeProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_mosaic",
			Description: "Render the NxN grid samples of an image as a flat-tile mosaic PNG, returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"grid_size": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rows and columns (default: 4)",
						"default":     4,
					},
					"surface_size": surfaceSizeProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_sample_overlay",
			Description: "Show where the sampler reads an image: the fitted surface with the NxN tile grid drawn on it and a ring around every sampled pixel. Returns base64 PNG plus the sample coordinates and colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"grid_size": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rows and columns (default: 4)",
						"default":     4,
					},
					"surface_size": surfaceSizeProperty(),
					"show_labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Print the row-major tile index in each tile (default: false)",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color in hex, with optional alpha (default: #FF000080)",
						"default":     "#FF000080",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color List Operations
		{
			Name:        "palette_swatch",
			Description: "Render a list of colors as a horizontal strip of square tiles, returned as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": colorsProperty(),
					"tile_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of each tile in pixels (default: 64)",
						"default":     64,
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "palette_dedupe",
			Description: "Remove near-duplicate colors, keeping the first occurrence. Two colors are near-duplicates when their perceived brightness differs by less than 10 and their RGB distance is less than 30.",
			InputSchema: colorListSchema(),
		},
		{
			Name:        "palette_rank",
			Description: "Sort colors by perceived brightness, brightest first. Colors of equal brightness keep their input order.",
			InputSchema: colorListSchema(),
		},
		{
			Name:        "palette_complements",
			Description: "Return the RGB complement (255 minus each channel) of every color, in input order.",
			InputSchema: colorListSchema(),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
