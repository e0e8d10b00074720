package kernels

// DiffusionConfig configures Floyd-Steinberg error diffusion.
type DiffusionConfig struct {
	// Threshold separates black from white: samples strictly above it become
	// 255, everything else becomes 0.
	Threshold uint8
}

// ParseDiffusionConfig reads the threshold from params[0].
func ParseDiffusionConfig(params []float32) (DiffusionConfig, error) {
	if len(params) < 1 {
		return DiffusionConfig{}, newError(KindMissingParameter, "Floyd-Steinberg requires threshold parameter")
	}
	return DiffusionConfig{Threshold: toByte(params[0])}, nil
}

// diffusionTap is one neighbor of the error-diffusion kernel. The weight is
// expressed in sixteenths.
type diffusionTap struct {
	dx, dy, weight int
}

// floydSteinbergTaps lists the unvisited neighbors that receive a share of
// the quantization error, in the order they are updated.
var floydSteinbergTaps = [...]diffusionTap{
	{dx: 1, dy: 0, weight: 7},
	{dx: -1, dy: 1, weight: 3},
	{dx: 0, dy: 1, weight: 5},
	{dx: 1, dy: 1, weight: 1},
}

// Diffuse binarizes p with Floyd-Steinberg error diffusion.
//
// The scan runs row by row from the top-left corner. Each sample is replaced
// by 0 or 255 and the residual (old - new) is pushed onto the neighbors that
// have not been visited yet:
//
//	      .    X   7/16
//	    3/16  5/16 1/16
//
// Each share is computed as residual*weight/16 with truncating integer
// division, independently per neighbor, and the neighbor is clamped to
// [0, 255] after the addition. Neighbors outside the plane are skipped.
//
// The returned slice is a new allocation; p.Pix is not modified.
func Diffuse(p Plane, cfg DiffusionConfig) []byte {
	out := p.Clone()
	w, h := p.Width, p.Height
	threshold := int(cfg.Threshold)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			old := int(out[idx])
			quantized := 0
			if old > threshold {
				quantized = 255
			}
			out[idx] = byte(quantized)

			residual := old - quantized
			if residual == 0 {
				continue
			}
			for _, tap := range floydSteinbergTaps {
				nx, ny := x+tap.dx, y+tap.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				n := ny*w + nx
				out[n] = clampByte(int(out[n]) + residual*tap.weight/16)
			}
		}
	}

	return out
}

// FloydSteinberg is the "floyd_steinberg" operation.
type FloydSteinberg struct{}

func (FloydSteinberg) Name() string { return "floyd_steinberg" }

func (FloydSteinberg) Apply(p Plane, params []float32) Result {
	cfg, err := ParseDiffusionConfig(params)
	if err != nil {
		return failWith(err)
	}
	return succeed(Diffuse(p, cfg))
}
