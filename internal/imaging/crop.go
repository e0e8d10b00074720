package imaging

import (
	"fmt"
	"image"
)

// RegionNames lists the names accepted by NamedRegion.
var RegionNames = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// NamedRegion resolves a named part of an image of the given size to a
// Region suitable for Prepare.
//
// Halves and quadrants split at w/2 and h/2, so for odd sizes the right and
// bottom parts are one pixel larger. "center" is the middle 50% in each axis.
func NamedRegion(size image.Point, name string) (Region, error) {
	w, h := size.X, size.Y
	midX, midY := w/2, h/2

	var r Region
	switch name {
	case "top-left":
		r = Region{0, 0, midX, midY}
	case "top-right":
		r = Region{midX, 0, w, midY}
	case "bottom-left":
		r = Region{0, midY, midX, h}
	case "bottom-right":
		r = Region{midX, midY, w, h}
	case "top-half":
		r = Region{0, 0, w, midY}
	case "bottom-half":
		r = Region{0, midY, w, h}
	case "left-half":
		r = Region{0, 0, midX, h}
	case "right-half":
		r = Region{midX, 0, w, h}
	case "center":
		qW, qH := w/4, h/4
		r = Region{qW, qH, w - qW, h - qH}
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}

	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return Region{}, fmt.Errorf("region %s of a %dx%d image is empty", name, w, h)
	}
	return r, nil
}
