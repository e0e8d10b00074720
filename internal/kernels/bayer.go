package kernels

// MatrixSize selects one of the fixed Bayer threshold matrices.
type MatrixSize int

const (
	Bayer2x2 MatrixSize = 2
	Bayer4x4 MatrixSize = 4
	Bayer8x8 MatrixSize = 8
)

// DefaultBayerThreshold is the base threshold used when params[1] is absent.
const DefaultBayerThreshold = 128

// Bayer threshold offsets, row-major. The values are part of the output
// contract and must not be regenerated or normalized.
var (
	bayer2x2 = [...]uint8{
		0, 128,
		192, 64,
	}

	bayer4x4 = [...]uint8{
		0, 128, 32, 160,
		192, 64, 224, 96,
		48, 176, 16, 144,
		240, 112, 208, 80,
	}

	bayer8x8 = [...]uint8{
		0, 128, 32, 160, 8, 136, 40, 168,
		192, 64, 224, 96, 200, 72, 232, 104,
		48, 176, 16, 144, 56, 184, 24, 152,
		240, 112, 208, 80, 248, 120, 216, 88,
		12, 140, 44, 172, 4, 132, 36, 164,
		204, 76, 236, 108, 196, 68, 228, 100,
		60, 188, 28, 156, 52, 180, 20, 148,
		252, 124, 220, 92, 244, 116, 212, 84,
	}
)

// matrix returns the table for s, or nil when s is not a supported size.
func (s MatrixSize) matrix() []uint8 {
	switch s {
	case Bayer2x2:
		return bayer2x2[:]
	case Bayer4x4:
		return bayer4x4[:]
	case Bayer8x8:
		return bayer8x8[:]
	}
	return nil
}

// Valid reports whether s names one of the built-in matrices.
func (s MatrixSize) Valid() bool {
	return s.matrix() != nil
}

// BayerConfig configures ordered dithering.
type BayerConfig struct {
	Size      MatrixSize // 2, 4 or 8
	Threshold uint8      // Base threshold before the matrix offset
}

// ParseBayerConfig reads the matrix size from params[0] and the optional base
// threshold from params[1].
func ParseBayerConfig(params []float32) (BayerConfig, error) {
	if len(params) < 1 {
		return BayerConfig{}, newError(KindMissingParameter, "Bayer dither requires matrix size parameter")
	}

	size := MatrixSize(toIndex(params[0]))
	if !size.Valid() {
		return BayerConfig{}, newError(KindUnsupportedConfig, "Unsupported Bayer matrix size: %d", int(size))
	}

	cfg := BayerConfig{Size: size, Threshold: DefaultBayerThreshold}
	if len(params) > 1 {
		cfg.Threshold = toByte(params[1])
	}
	return cfg, nil
}

// OrderedDither binarizes p against a tiled Bayer matrix.
//
// For the sample at (x, y) the matrix cell m = M[y mod n][x mod n] shifts the
// base threshold by (m-128)/4, using signed truncating division. The sample
// becomes 255 when it is strictly greater than the shifted threshold and 0
// otherwise. Every output sample depends only on its own input sample and
// position, so the result is periodic in both axes with period n.
//
// OrderedDither panics if cfg.Size is not valid; use ParseBayerConfig to build
// configs from untrusted input.
func OrderedDither(p Plane, cfg BayerConfig) []byte {
	m := cfg.Size.matrix()
	if m == nil {
		panic("kernels: invalid Bayer matrix size")
	}
	n := int(cfg.Size)
	base := int(cfg.Threshold)

	// Precompute the effective threshold for each matrix cell.
	adjusted := make([]int, len(m))
	for i, v := range m {
		adjusted[i] = base + (int(v)-128)/4
	}

	out := make([]byte, len(p.Pix))
	for y := 0; y < p.Height; y++ {
		row := (y % n) * n
		for x := 0; x < p.Width; x++ {
			idx := y*p.Width + x
			if int(p.Pix[idx]) > adjusted[row+x%n] {
				out[idx] = 255
			}
		}
	}
	return out
}

// BayerDither is the "bayer_dither" operation.
type BayerDither struct{}

func (BayerDither) Name() string { return "bayer_dither" }

func (BayerDither) Apply(p Plane, params []float32) Result {
	cfg, err := ParseBayerConfig(params)
	if err != nil {
		return failWith(err)
	}
	return succeed(OrderedDither(p, cfg))
}
