package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestNamedRegion(t *testing.T) {
	size := image.Pt(101, 80)

	tests := []struct {
		name string
		want Region
	}{
		{"top-left", Region{0, 0, 50, 40}},
		{"top-right", Region{50, 0, 101, 40}},
		{"bottom-left", Region{0, 40, 50, 80}},
		{"bottom-right", Region{50, 40, 101, 80}},
		{"top-half", Region{0, 0, 101, 40}},
		{"bottom-half", Region{0, 40, 101, 80}},
		{"left-half", Region{0, 0, 50, 80}},
		{"right-half", Region{50, 0, 101, 80}},
		{"center", Region{25, 20, 76, 60}},
	}

	if len(tests) != len(RegionNames) {
		t.Fatalf("test covers %d regions, RegionNames has %d", len(tests), len(RegionNames))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NamedRegion(size, tt.name)
			if err != nil {
				t.Fatalf("NamedRegion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNamedRegion_Errors(t *testing.T) {
	if _, err := NamedRegion(image.Pt(10, 10), "middle"); err == nil {
		t.Error("expected error for unknown name")
	}
	if _, err := NamedRegion(image.Pt(1, 1), "top-left"); err == nil {
		t.Error("expected error for empty quadrant")
	}
	if _, err := NamedRegion(image.Pt(1, 1), "center"); err != nil {
		t.Errorf("center of 1x1 should be the whole image: %v", err)
	}
}

func TestNamedRegion_Prepare(t *testing.T) {
	img := createInMemoryImage(40, 20, color.White)

	r, err := NamedRegion(img.Bounds().Size(), "right-half")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Prepare(img, &r, 1.0)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if got := out.Bounds().Size(); got != image.Pt(20, 20) {
		t.Errorf("size: got %v, want 20x20", got)
	}
}
