package kernels

// FillConfig configures a flood fill.
type FillConfig struct {
	X, Y  int   // Seed pixel
	Value uint8 // Replacement intensity
}

// ParseFillConfig reads the seed coordinates from params[0] and params[1] and
// the fill value from params[2].
//
// Coordinates are truncated toward zero and saturate at 0, so a negative
// coordinate addresses the first row or column. Bounds are checked by Fill,
// which knows the plane dimensions.
func ParseFillConfig(params []float32) (FillConfig, error) {
	if len(params) < 3 {
		return FillConfig{}, newError(KindMissingParameter, "Flood fill requires x, y, fill_value parameters")
	}
	return FillConfig{
		X:     toIndex(params[0]),
		Y:     toIndex(params[1]),
		Value: toByte(params[2]),
	}, nil
}

// point is a work-list entry.
type point struct {
	x, y int
}

// Fill replaces the 4-connected region containing the seed pixel with
// cfg.Value.
//
// The region is every pixel reachable from the seed through up, down, left
// and right steps while staying on pixels equal to the seed's original value.
// Diagonal neighbors are not connected.
//
// Returns:
//   - []byte: a new plane with the region filled. When the seed already holds
//     cfg.Value the result is an unmodified copy.
//   - error: ErrOutOfBounds when the seed lies outside the plane.
//
// # Algorithm
//
// An explicit LIFO work list replaces recursion so large regions cannot
// exhaust the goroutine stack. Each pixel changes from the original value to
// the fill value at most once and only matching pixels are expanded, so the
// loop terminates after at most width*height fills.
func Fill(p Plane, cfg FillConfig) ([]byte, error) {
	w, h := p.Width, p.Height
	if !p.Contains(cfg.X, cfg.Y) {
		return nil, newError(KindOutOfBounds, "Fill coordinates out of bounds")
	}

	out := p.Clone()
	original := out[cfg.Y*w+cfg.X]
	if original == cfg.Value {
		return out, nil
	}

	stack := []point{{x: cfg.X, y: cfg.Y}}
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := pt.y*w + pt.x
		if out[idx] != original {
			continue
		}
		out[idx] = cfg.Value

		if pt.x > 0 {
			stack = append(stack, point{x: pt.x - 1, y: pt.y})
		}
		if pt.x+1 < w {
			stack = append(stack, point{x: pt.x + 1, y: pt.y})
		}
		if pt.y > 0 {
			stack = append(stack, point{x: pt.x, y: pt.y - 1})
		}
		if pt.y+1 < h {
			stack = append(stack, point{x: pt.x, y: pt.y + 1})
		}
	}

	return out, nil
}

// FloodFill is the "flood_fill" operation.
type FloodFill struct{}

func (FloodFill) Name() string { return "flood_fill" }

func (FloodFill) Apply(p Plane, params []float32) Result {
	cfg, err := ParseFillConfig(params)
	if err != nil {
		return failWith(err)
	}
	out, err := Fill(p, cfg)
	if err != nil {
		return failWith(err)
	}
	return succeed(out)
}
