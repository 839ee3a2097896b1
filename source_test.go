package halftone

import (
	"image"
	"image/color"
	"testing"
)

func TestGray(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{255, 255, 255, 255},
		{0, 0, 0, 0},
		{255, 0, 0, 87},
		{0, 255, 0, 127},
		{0, 0, 255, 39},
		{128, 128, 128, 128},
	}
	for _, tt := range tests {
		if got := Gray(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Gray(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestImageSource(t *testing.T) {
	rect := image.Rect(0, 0, 2, 1)

	gray := image.NewGray(rect)
	gray.SetGray(1, 0, color.Gray{Y: 77})

	nrgba := image.NewNRGBA(rect)
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})

	rgba := image.NewRGBA(rect)
	rgba.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	tests := []struct {
		name string
		img  image.Image
		want uint8
	}{
		{"gray", gray, 77},
		{"nrgba", nrgba, 87},
		{"rgba", rgba, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ImageSource(tt.img)
			if w, h := src.Size(); w != 2 || h != 1 {
				t.Fatalf("Size() = %dx%d, want 2x1", w, h)
			}
			if got := src.Gray(1, 0); got != tt.want {
				t.Errorf("Gray(1, 0) = %d, want %d", got, tt.want)
			}
			if got := src.Gray(0, 0); got != 0 {
				t.Errorf("Gray(0, 0) = %d, want 0", got)
			}
		})
	}
}

// TestImageSource_Offset verifies (0, 0) maps to the image's top-left
// corner even when its bounds do not start at the origin.
func TestImageSource_Offset(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 13, 22))
	img.SetGray(10, 20, color.Gray{Y: 200})

	src := ImageSource(img)
	if w, h := src.Size(); w != 3 || h != 2 {
		t.Fatalf("Size() = %dx%d, want 3x2", w, h)
	}
	if got := src.Gray(0, 0); got != 200 {
		t.Errorf("Gray(0, 0) = %d, want 200", got)
	}
}
