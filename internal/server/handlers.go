package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ironsheep/raster-kernels-mcp/internal/imaging"
	"github.com/ironsheep/raster-kernels-mcp/internal/kernels"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "kernel_process").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// KernelErrorData is the JSON-RPC error data attached when a kernel rejects
// its input. Kind is the snake_case FailureKind name.
type KernelErrorData struct {
	Message string              `json:"message"`
	Kind    kernels.FailureKind `json:"kind"`
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
// When the failure came from a kernel, the error data is a KernelErrorData;
// otherwise it is the error string.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug("tool failed",
			zap.String("tool", params.Name),
			zap.Duration("cost", time.Since(start)),
			zap.Error(err))

		var kerr *kernels.Error
		if errors.As(err, &kerr) {
			return s.errorResponse(req.ID, -32000, "Tool execution failed",
				KernelErrorData{Message: kerr.Message, Kind: kerr.Kind})
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	s.log.Debug("tool finished",
		zap.String("tool", params.Name),
		zap.Duration("cost", time.Since(start)))

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
//  3. Loads images from cache as needed
//  4. Runs the kernel through kernels.Process
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Kernel Operations
	case "kernel_list":
		return s.handleKernelList(args)
	case "kernel_process":
		return s.handleKernelProcess(args)
	case "image_kernel":
		return s.handleImageKernel(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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

// checkPixels enforces the configured per-request pixel cap. The product is
// taken in uint64 so two uint32 dimensions cannot overflow it.
func (s *Server) checkPixels(width, height uint64) error {
	if s.maxPixels > 0 && width*height > uint64(s.maxPixels) {
		return fmt.Errorf("plane %dx%d exceeds the %d pixel limit", width, height, s.maxPixels)
	}
	return nil
}

// toFloat32 narrows JSON numbers to the kernels' parameter type.
func toFloat32(params []float64) []float32 {
	out := make([]float32, len(params))
	for i, p := range params {
		out[i] = float32(p)
	}
	return out
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

// === Kernel Handlers ===

type kernelListResult struct {
	Operations []kernels.Descriptor `json:"operations"`
}

func (s *Server) handleKernelList(json.RawMessage) (interface{}, error) {
	return &kernelListResult{Operations: kernels.Descriptors()}, nil
}

type kernelProcessArgs struct {
	Operation    string    `json:"operation"`
	PixelsBase64 string    `json:"pixels_base64"`
	Width        uint32    `json:"width"`
	Height       uint32    `json:"height"`
	Params       []float64 `json:"params"`
}

// KernelProcessResult is the kernel_process tool result.
type KernelProcessResult struct {
	Success    bool   `json:"success"`
	Operation  string `json:"operation"`
	Width      uint32 `json:"width"`
	Height     uint32 `json:"height"`
	DataBase64 string `json:"data_base64"`
}

func (s *Server) handleKernelProcess(args json.RawMessage) (interface{}, error) {
	// Negative or wider-than-uint32 dimensions fail to decode here.
	var a kernelProcessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := s.checkPixels(uint64(a.Width), uint64(a.Height)); err != nil {
		return nil, err
	}

	pixels, err := base64.StdEncoding.DecodeString(a.PixelsBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid pixels_base64: %w", err)
	}

	res := kernels.Process(a.Operation, pixels, a.Width, a.Height, toFloat32(a.Params))
	if err := res.Err(); err != nil {
		return nil, err
	}

	return &KernelProcessResult{
		Success:    true,
		Operation:  a.Operation,
		Width:      a.Width,
		Height:     a.Height,
		DataBase64: base64.StdEncoding.EncodeToString(res.Data),
	}, nil
}

type imageKernelArgs struct {
	Path      string          `json:"path"`
	Operation string          `json:"operation"`
	Params    []float64       `json:"params"`
	Region    *imaging.Region `json:"region"`
	Quadrant  string          `json:"quadrant"`
	Scale     float64         `json:"scale"`
	imaging.Ink
}

// ImageKernelResult is the image_kernel tool result.
type ImageKernelResult struct {
	Operation string `json:"operation"`
	*imaging.PlaneResult
}

func (s *Server) handleImageKernel(args json.RawMessage) (interface{}, error) {
	var a imageKernelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	if a.Region != nil && a.Quadrant != "" {
		return nil, fmt.Errorf("region and quadrant are mutually exclusive")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region := a.Region
	if a.Quadrant != "" {
		r, err := imaging.NamedRegion(img.Bounds().Size(), a.Quadrant)
		if err != nil {
			return nil, err
		}
		region = &r
	}
	prepared, err := imaging.Prepare(img, region, a.Scale)
	if err != nil {
		return nil, err
	}
	b := prepared.Bounds()
	if err := s.checkPixels(uint64(b.Dx()), uint64(b.Dy())); err != nil {
		return nil, err
	}

	plane := imaging.ToPlane(prepared)
	res := kernels.Process(a.Operation, plane.Pix, uint32(plane.Width), uint32(plane.Height), toFloat32(a.Params))
	if err := res.Err(); err != nil {
		return nil, err
	}

	out, err := kernels.NewPlane(res.Data, plane.Width, plane.Height)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePlane(out, a.Ink)
	if err != nil {
		return nil, err
	}
	return &ImageKernelResult{Operation: a.Operation, PlaneResult: encoded}, nil
}
