package image

import (
	"errors"
	"image"
	"testing"
)

func TestImageBuf_Resize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, target int
		wantH        int
	}{
		{"halve", 100, 50, 50, 25},
		{"double", 10, 7, 20, 14},
		{"round", 3, 2, 2, 1},
		{"min height", 100, 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, _ := NewImageBuf(tt.w, tt.h, FormatRGB8)
			out, err := buf.Resize(tt.target)
			if err != nil {
				t.Fatalf("Resize() error = %v", err)
			}
			if w, h := out.Size(); w != tt.target || h != tt.wantH {
				t.Errorf("Resize(%d) size = (%d, %d), want (%d, %d)", tt.target, w, h, tt.target, tt.wantH)
			}
		})
	}
}

func TestImageBuf_Resize_KeepsFlatColor(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	buf, _ := FromStdImage(src)

	out, err := buf.Resize(13)
	if err != nil {
		t.Fatal(err)
	}
	if out.Format() != FormatGray8 {
		t.Errorf("Format() = %v, want Gray8", out.Format())
	}
	for y := range out.Height() {
		for x := range out.Width() {
			if g := out.Gray(x, y); g < 199 || g > 201 {
				t.Fatalf("Gray(%d, %d) = %d, want 200±1", x, y, g)
			}
		}
	}
}

func TestImageBuf_Resize_Invalid(t *testing.T) {
	buf, _ := FromStdImage(image.NewGray(image.Rect(0, 0, 4, 4)))
	if _, err := buf.Resize(0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0) error = %v, want ErrInvalidDimensions", err)
	}
}
