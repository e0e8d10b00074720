package server

import (
	"github.com/ironsheep/raster-kernels-mcp/internal/imaging"
	"github.com/ironsheep/raster-kernels-mcp/internal/kernels"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// operationNames lists the kernel names accepted by the operation argument.
func operationNames() []string {
	ops := kernels.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}
	return names
}

// paramsSchema is shared by kernel_process and image_kernel.
var paramsSchema = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "number"},
	"description": "Positional kernel parameters. floyd_steinberg: [threshold]; bayer_dither: [matrix_size, threshold?]; flood_fill: [x, y, fill_value]; box_blur: [radius]. See kernel_list.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and grayscale plane size. The decoded image is cached for subsequent image_kernel calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
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
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Kernel Operations
		{
			Name:        "kernel_list",
			Description: "List the raster kernels and their positional parameters.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "kernel_process",
			Description: "Run a kernel on a raw 8-bit grayscale plane (row-major, one byte per pixel) and return the processed plane as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        operationNames(),
						"description": "Kernel to run",
					},
					"pixels_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded plane of exactly width*height bytes",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Plane width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Plane height in pixels",
					},
					"params": paramsSchema,
				},
				"required": []string{"operation", "pixels_base64", "width", "height"},
			},
		},
		{
			Name:        "image_kernel",
			Description: "Load an image, optionally crop and scale it, convert it to grayscale, run a kernel and return the result as base64-encoded PNG. Use ink/paper to render dark and light pixels in colour.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        operationNames(),
						"description": "Kernel to run",
					},
					"params": paramsSchema,
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required":    []string{"x1", "y1", "x2", "y2"},
						"description": "Optional crop applied before the kernel; (x2,y2) exclusive",
					},
					"quadrant": map[string]interface{}{
						"type":        "string",
						"enum":        imaging.RegionNames,
						"description": "Optional named region, instead of region",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied after cropping. Default 1.0",
						"default":     1.0,
					},
					"ink": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour for intensity 0 (e.g. \"#1a1a2e\"). Default black",
					},
					"paper": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour for intensity 255. Default white",
					},
				},
				"required": []string{"path", "operation"},
			},
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
