// Package kernels implements the raster kernels behind the MCP and HTTP tools.
//
// Every kernel consumes a single 8-bit intensity plane and returns a freshly
// allocated plane of the same dimensions. Four kernels are provided:
//
//   - floyd_steinberg: error-diffusion binarization
//   - bayer_dither: ordered dithering against a 2x2, 4x4 or 8x8 Bayer matrix
//   - flood_fill: 4-connected region fill from a seed pixel
//   - box_blur: clipped square-window mean
//
// # Pixel Layout
//
// A Plane stores width*height samples in row-major order, so the sample for
// (x, y) lives at index y*width + x. Coordinates are 0-based with the origin at
// the top-left corner.
//
// # Parameters
//
// Callers at the protocol boundary pass parameters as a positional []float32.
// Each kernel converts them into a named config (DiffusionConfig, BayerConfig,
// FillConfig, BlurConfig) before touching any pixel. Float values are truncated
// toward zero and saturate at the limits of the target type: negative values
// and NaN become 0, values above 255 become 255 for byte parameters.
//
// # Results
//
// Process and Operation.Apply never panic on well-formed input and never mutate
// the caller's buffer. The outcome is a Result: on success Data holds the new
// plane, on failure Error holds a human readable message and Kind classifies it.
// Result.Err adapts a failure to the error interface so callers can use
// errors.Is with the package sentinels.
//
// # Thread Safety
//
// All kernels are stateless. The Bayer tables are read-only, so Process may be
// called concurrently from any number of goroutines.
package kernels
