package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/raster-kernels-mcp/internal/kernels"
)

// Ink maps plane intensities onto two colours when rendering.
//
// Intensity 0 is drawn in Foreground and 255 in Background; values in between
// are blended linearly in RGB. The zero Ink renders plain grayscale. Colours
// are "#RRGGBB" hex strings; an empty field defaults to black foreground or
// white background.
type Ink struct {
	Foreground string `json:"ink,omitempty"`
	Background string `json:"paper,omitempty"`
}

// IsZero reports whether no colours were requested.
func (k Ink) IsZero() bool {
	return k.Foreground == "" && k.Background == ""
}

// palette builds the 256-entry lookup table for k.
func (k Ink) palette() (color.Palette, error) {
	fgHex, bgHex := k.Foreground, k.Background
	if fgHex == "" {
		fgHex = "#000000"
	}
	if bgHex == "" {
		bgHex = "#FFFFFF"
	}

	fg, err := colorful.Hex(fgHex)
	if err != nil {
		return nil, fmt.Errorf("invalid ink colour %q: %w", fgHex, err)
	}
	bg, err := colorful.Hex(bgHex)
	if err != nil {
		return nil, fmt.Errorf("invalid paper colour %q: %w", bgHex, err)
	}

	pal := make(color.Palette, 256)
	for i := range pal {
		r, g, b := fg.BlendRgb(bg, float64(i)/255).Clamped().RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return pal, nil
}

// Render turns a plane back into an image.
//
// With a zero Ink the result is an *image.Gray sharing nothing with p.
// Otherwise it is an *image.Paletted whose colour indices are the plane's
// samples, so dithered output stays exactly two colours.
func Render(p kernels.Plane, ink Ink) (image.Image, error) {
	rect := image.Rect(0, 0, p.Width, p.Height)
	if ink.IsZero() {
		gray := image.NewGray(rect)
		copy(gray.Pix, p.Pix)
		return gray, nil
	}

	pal, err := ink.palette()
	if err != nil {
		return nil, err
	}
	out := image.NewPaletted(rect, pal)
	copy(out.Pix, p.Pix)
	return out, nil
}

// PlaneResult is a rendered plane encoded as base64 PNG.
type PlaneResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePlane renders p with ink and encodes it as base64 PNG.
func EncodePlane(p kernels.Plane, ink Ink) (*PlaneResult, error) {
	img, err := Render(p, ink)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode plane: %w", err)
	}

	return &PlaneResult{
		Width:       p.Width,
		Height:      p.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
