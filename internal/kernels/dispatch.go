package kernels

// Operation is one kernel reachable through Process.
//
// The set of operations is closed: FloydSteinberg, BayerDither, FloodFill and
// BoxBlur. Apply validates its own parameters and never mutates p.Pix.
type Operation interface {
	Name() string
	Apply(p Plane, params []float32) Result
}

// OpKind enumerates the built-in operations.
type OpKind int

const (
	OpFloydSteinberg OpKind = iota
	OpBayerDither
	OpFloodFill
	OpBoxBlur

	numOps
)

// operations is indexed by OpKind. Adding an OpKind without an entry here
// fails TestOperations_Exhaustive.
var operations = [numOps]Operation{
	OpFloydSteinberg: FloydSteinberg{},
	OpBayerDither:    BayerDither{},
	OpFloodFill:      FloodFill{},
	OpBoxBlur:        BoxBlur{},
}

// Operation returns the implementation for k, or nil if k is out of range.
func (k OpKind) Operation() Operation {
	if k < 0 || k >= numOps {
		return nil
	}
	return operations[k]
}

func (k OpKind) String() string {
	if op := k.Operation(); op != nil {
		return op.Name()
	}
	return "unknown"
}

// Operations returns all built-in operations in OpKind order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations[:])
	return out
}

// Lookup finds an operation by its exact, case-sensitive name.
func Lookup(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name() == name {
			return op, true
		}
	}
	return nil, false
}

// Process runs the named operation on a width x height plane.
//
// Parameters:
//   - operation: one of "floyd_steinberg", "bayer_dither", "flood_fill",
//     "box_blur".
//   - pixels: row-major 8-bit samples. Not modified.
//   - width, height: plane dimensions.
//   - params: positional parameters, interpreted per operation.
//
// Returns a Result. Unknown operations fail with KindUnknownOperation before
// the buffer is inspected. A buffer whose length differs from width*height
// fails with KindBufferSizeMismatch instead of being read out of range.
func Process(operation string, pixels []byte, width, height uint32, params []float32) Result {
	op, ok := Lookup(operation)
	if !ok {
		return fail(KindUnknownOperation, "Unknown operation: %s", operation)
	}

	p, err := NewPlane(pixels, int(width), int(height))
	if err != nil {
		return failWith(err)
	}
	return op.Apply(p, params)
}
