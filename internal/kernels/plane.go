package kernels

import (
	"fmt"
	"math"
)

// Plane is a single-channel 8-bit raster in row-major order.
//
// The zero Plane is an empty 0x0 image.
type Plane struct {
	Pix    []byte // Intensity samples, len(Pix) == Width*Height
	Width  int    // Number of columns
	Height int    // Number of rows
}

// NewPlane wraps pix as a Plane after checking that its length matches the
// declared dimensions.
//
// The returned Plane shares pix with the caller. Kernels never write to it.
func NewPlane(pix []byte, width, height int) (Plane, error) {
	if width < 0 || height < 0 {
		return Plane{}, newError(KindBufferSizeMismatch,
			"Invalid plane dimensions: %dx%d", width, height)
	}
	if want := width * height; len(pix) != want {
		return Plane{}, newError(KindBufferSizeMismatch,
			"Pixel buffer size mismatch: got %d bytes, want %dx%d=%d", len(pix), width, height, want)
	}
	return Plane{Pix: pix, Width: width, Height: height}, nil
}

// Clone returns a deep copy of the plane's samples.
func (p Plane) Clone() []byte {
	out := make([]byte, len(p.Pix))
	copy(out, p.Pix)
	return out
}

// At returns the sample at (x, y). Coordinates must be inside the plane.
func (p Plane) At(x, y int) byte {
	return p.Pix[y*p.Width+x]
}

// Contains reports whether (x, y) lies inside the plane.
func (p Plane) Contains(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

// String implements fmt.Stringer for log and error messages.
func (p Plane) String() string {
	return fmt.Sprintf("%dx%d plane", p.Width, p.Height)
}

// clampByte constrains an intermediate sample value to [0, 255].
func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// toByte truncates a parameter to a byte, saturating at 0 and 255.
func toByte(f float32) byte {
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return byte(f)
}

// toIndex truncates a parameter to a non-negative int, saturating at 0 and
// math.MaxInt32 so later arithmetic on it cannot overflow.
func toIndex(f float32) int {
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}
