// Package imaging adapts decoded images to and from the intensity planes
// processed by package kernels.
//
// The kernels themselves know nothing about files or colour. This package
// supplies everything around them: loading and caching source images,
// cropping and rescaling, converting to a grayscale plane, and rendering a
// processed plane back to PNG.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// For regions, (x1,y1) is inclusive and (x2,y2) is exclusive. NamedRegion
// resolves names such as "top-left" or "center" to a Region.
//
// # Supported Formats
//
// PNG, JPEG and GIF through the standard library; BMP, TIFF and WebP through
// golang.org/x/image. Output is always PNG.
//
// # Grayscale Conversion
//
// Colour images are reduced to luminance with bild's Grayscale effect. Alpha
// is discarded. *image.Gray sources are copied without conversion, so a
// grayscale PNG survives a load/process/encode round trip byte for byte.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
