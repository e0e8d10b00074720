package kernels

// ParamSpec describes one positional parameter of an operation.
type ParamSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Descriptor documents an operation for listing endpoints.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamSpec `json:"params"`
}

var descriptors = [numOps]Descriptor{
	OpFloydSteinberg: {
		Name:        "floyd_steinberg",
		Description: "Binarize with Floyd-Steinberg error diffusion (7/16 right, 3/16 down-left, 5/16 down, 1/16 down-right).",
		Params: []ParamSpec{
			{Name: "threshold", Description: "Cut-off intensity; pixels strictly above it become 255.", Required: true},
		},
	},
	OpBayerDither: {
		Name:        "bayer_dither",
		Description: "Binarize with an ordered Bayer threshold matrix tiled over the plane.",
		Params: []ParamSpec{
			{Name: "matrix_size", Description: "2, 4 or 8.", Required: true},
			{Name: "threshold", Description: "Base threshold the matrix is centred on. Default 128."},
		},
	},
	OpFloodFill: {
		Name:        "flood_fill",
		Description: "Replace the 4-connected region of equal intensity containing the seed with a fill value.",
		Params: []ParamSpec{
			{Name: "x", Description: "Seed column (0-based).", Required: true},
			{Name: "y", Description: "Seed row (0-based).", Required: true},
			{Name: "fill_value", Description: "Replacement intensity 0-255.", Required: true},
		},
	},
	OpBoxBlur: {
		Name:        "box_blur",
		Description: "Average each pixel over a (2r+1)x(2r+1) window clipped to the plane.",
		Params: []ParamSpec{
			{Name: "radius", Description: "Window radius in pixels; 0 returns the input unchanged.", Required: true},
		},
	},
}

// Describe returns the descriptor for k. The zero Descriptor is returned for
// out-of-range kinds.
func (k OpKind) Describe() Descriptor {
	if k < 0 || k >= numOps {
		return Descriptor{}
	}
	return descriptors[k]
}

// Descriptors returns descriptors for all built-in operations in OpKind order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, numOps)
	for k := OpKind(0); k < numOps; k++ {
		out = append(out, k.Describe())
	}
	return out
}
