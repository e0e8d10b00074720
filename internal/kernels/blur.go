package kernels

// BlurConfig configures the box blur.
type BlurConfig struct {
	// Radius is the half-width of the window. 0 copies the input.
	Radius int
}

// ParseBlurConfig reads the radius from params[0].
func ParseBlurConfig(params []float32) (BlurConfig, error) {
	if len(params) < 1 {
		return BlurConfig{}, newError(KindMissingParameter, "Box blur requires radius parameter")
	}
	return BlurConfig{Radius: toIndex(params[0])}, nil
}

// BoxAverage replaces each sample with the mean of the square window of the
// given radius around it.
//
// The window [x-r, x+r] x [y-r, y+r] is clipped to the plane, so samples near
// an edge average over fewer pixels. The mean is the integer quotient of the
// window sum by the number of pixels actually sampled. Windows always read the
// original input.
//
// Window sums come from a summed-area table, which makes the cost independent
// of the radius while producing exactly the same integers as summing each
// window directly.
func BoxAverage(p Plane, cfg BlurConfig) []byte {
	w, h := p.Width, p.Height
	out := make([]byte, len(p.Pix))
	if w == 0 || h == 0 {
		return out
	}

	r := cfg.Radius
	if r < 0 {
		r = 0
	}
	// A radius beyond the larger dimension covers the whole plane anyway.
	if limit := max(w, h); r > limit {
		r = limit
	}

	// sat[(y)*(w+1)+(x)] holds the sum of all samples above and left of (x, y).
	stride := w + 1
	sat := make([]uint64, stride*(h+1))
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(p.Pix[y*w+x])
			sat[(y+1)*stride+x+1] = sat[y*stride+x+1] + rowSum
		}
	}

	for y := 0; y < h; y++ {
		y0, y1 := max(0, y-r), min(h, y+r+1)
		for x := 0; x < w; x++ {
			x0, x1 := max(0, x-r), min(w, x+r+1)
			sum := sat[y1*stride+x1] - sat[y0*stride+x1] - sat[y1*stride+x0] + sat[y0*stride+x0]
			count := uint64((x1 - x0) * (y1 - y0))
			out[y*w+x] = byte(sum / count)
		}
	}

	return out
}

// BoxBlur is the "box_blur" operation.
type BoxBlur struct{}

func (BoxBlur) Name() string { return "box_blur" }

func (BoxBlur) Apply(p Plane, params []float32) Result {
	cfg, err := ParseBlurConfig(params)
	if err != nil {
		return failWith(err)
	}
	return succeed(BoxAverage(p, cfg))
}
