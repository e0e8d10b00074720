package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestToPlane_Gray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	copy(gray.Pix, []byte{1, 2, 3, 4, 5, 6})

	p := ToPlane(gray)
	if p.Width != 3 || p.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", p.Width, p.Height)
	}
	for i, want := range []byte{1, 2, 3, 4, 5, 6} {
		if p.Pix[i] != want {
			t.Errorf("Pix[%d]: got %d, want %d", i, p.Pix[i], want)
		}
	}

	// The plane must not alias the source image.
	p.Pix[0] = 200
	if gray.Pix[0] != 1 {
		t.Error("ToPlane aliased the source image")
	}
}

func TestToPlane_SubImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range gray.Pix {
		gray.Pix[i] = byte(i)
	}
	sub := gray.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	p := ToPlane(sub)
	want := []byte{5, 6, 9, 10}
	if p.Width != 2 || p.Height != 2 {
		t.Fatalf("dimensions: got %dx%d, want 2x2", p.Width, p.Height)
	}
	for i := range want {
		if p.Pix[i] != want[i] {
			t.Errorf("Pix[%d]: got %d, want %d", i, p.Pix[i], want[i])
		}
	}
}

func TestToPlane_Colour(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)

	p := ToPlane(img)
	if len(p.Pix) != 2 {
		t.Fatalf("len(Pix): got %d, want 2", len(p.Pix))
	}
	if p.Pix[0] < 254 {
		t.Errorf("white: got %d, want ~255", p.Pix[0])
	}
	if p.Pix[1] != 0 {
		t.Errorf("black: got %d, want 0", p.Pix[1])
	}
}

func TestToPlane_ColourMidTone(t *testing.T) {
	img := createInMemoryImage(3, 2, color.RGBA{100, 100, 100, 255})

	p := ToPlane(img)
	if p.Width != 3 || p.Height != 2 {
		t.Fatalf("size: got %dx%d, want 3x2", p.Width, p.Height)
	}
	for i, v := range p.Pix {
		if v < 99 || v > 101 {
			t.Errorf("pixel %d: got %d, want ~100", i, v)
		}
	}
}

func TestPrepare(t *testing.T) {
	img := createInMemoryImage(100, 80, color.RGBA{10, 20, 30, 255})

	tests := []struct {
		name          string
		region        *Region
		scale         float64
		wantW, wantH  int
		wantErr       bool
	}{
		{"passthrough", nil, 1.0, 100, 80, false},
		{"zero scale ignored", nil, 0, 100, 80, false},
		{"crop", &Region{X1: 10, Y1: 10, X2: 60, Y2: 30}, 1.0, 50, 20, false},
		{"crop and double", &Region{X1: 0, Y1: 0, X2: 10, Y2: 5}, 2.0, 20, 10, false},
		{"half", nil, 0.5, 50, 40, false},
		{"region outside", &Region{X1: 90, Y1: 0, X2: 110, Y2: 10}, 1.0, 0, 0, true},
		{"empty region", &Region{X1: 10, Y1: 10, X2: 10, Y2: 20}, 1.0, 0, 0, true},
		{"scale to nothing", nil, 0.001, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Prepare(img, tt.region, tt.scale)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Prepare failed: %v", err)
			}
			if b := out.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPrepare_PassthroughReturnsSource(t *testing.T) {
	img := createInMemoryImage(4, 4, color.White)
	out, err := Prepare(img, nil, 1.0)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if out != image.Image(img) {
		t.Error("Prepare copied an image that needed no changes")
	}
}
