// Package server implements the MCP (Model Context Protocol) server for the
// raster kernels.
//
// This package provides a JSON-RPC 2.0 server that exposes the grayscale
// kernels in package kernels through the MCP protocol, either on raw planes
// supplied by the client or on image files read from disk.
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
//
// Kernel Operations:
//   - kernel_list: Describe each kernel and its positional parameters
//   - kernel_process: Run a kernel on a base64 plane of width*height bytes
//   - image_kernel: Crop, scale, convert to grayscale, run a kernel and
//     return PNG
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: a KernelErrorData {message, kind} when a kernel rejected its
//     input, otherwise the Go error string
//
// Requests larger than kernels.max_pixels are refused before any kernel runs.
//
// # Usage
//
//	cfg, _ := config.Load("")
//	logger, _ := logging.New(cfg.Log.Level, cfg.Log.Format)
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal("server error", zap.Error(err))
//	}
package server
