package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/raster-kernels-mcp/internal/kernels"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Prepare crops and rescales img before it is converted to a plane.
//
// Parameters:
//   - img: The source image.
//   - region: Optional crop rectangle relative to the image's top-left
//     corner. nil keeps the whole image.
//   - scale: Resize factor applied after cropping. Values <= 0 and 1.0 leave
//     the size unchanged.
//
// Returns:
//   - image.Image: The prepared image. When neither a region nor a scale is
//     requested, img itself is returned.
//   - error: Non-nil if the region is empty or lies outside the image.
//
// Resizing uses the Lanczos filter. Kernels such as bayer_dither produce
// patterns at pixel scale, so scaling before dithering controls the dot size
// of the final output.
func Prepare(img image.Image, region *Region, scale float64) (image.Image, error) {
	bounds := img.Bounds()
	out := img

	if region != nil {
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		if region.X1 < 0 || region.Y1 < 0 || region.X2 > bounds.Dx() || region.Y2 > bounds.Dy() {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds %dx%d",
				region.X1, region.Y1, region.X2, region.Y2, bounds.Dx(), bounds.Dy())
		}
		rect := image.Rect(region.X1, region.Y1, region.X2, region.Y2).Add(bounds.Min)
		out = imaging.Crop(out, rect)
	}

	if scale > 0 && scale != 1.0 {
		b := out.Bounds()
		w := int(float64(b.Dx()) * scale)
		h := int(float64(b.Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %.3f reduces %dx%d image to nothing", scale, b.Dx(), b.Dy())
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}

	return out, nil
}

// ToPlane converts img to the single 8-bit intensity plane the kernels
// operate on.
//
// Images that already are *image.Gray are copied as-is. Everything else goes
// through a luminance conversion, so colour and alpha are discarded. The
// returned plane owns its samples.
func ToPlane(img image.Image) kernels.Plane {
	gray, ok := img.(*image.Gray)
	if !ok {
		gray = luminance(img)
	}

	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := y * gray.Stride
		copy(pix[y*w:(y+1)*w], gray.Pix[row:row+w])
	}
	return kernels.Plane{Pix: pix, Width: w, Height: h}
}

// luminance collapses bild's grayscale RGBA output, where R, G and B carry
// the same value, into a single-channel image.
func luminance(img image.Image) *image.Gray {
	rgba := effect.Grayscale(img)
	gray := image.NewGray(rgba.Rect)
	for i := range gray.Pix {
		gray.Pix[i] = rgba.Pix[4*i]
	}
	return gray
}
