package image

import (
	"errors"
	"testing"

	"github.com/gogpu/halftone"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid gray", 10, 5, FormatGray8, nil},
		{"valid rgba", 3, 3, FormatRGBA8, nil},
		{"zero width", 0, 5, FormatGray8, ErrInvalidDimensions},
		{"negative height", 5, -1, FormatGray8, ErrInvalidDimensions},
		{"bad format", 5, 5, Format(42), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImageBuf() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w, h := buf.Size(); w != tt.width || h != tt.height {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}
			if len(buf.Data()) != tt.width*tt.height*tt.format.BytesPerPixel() {
				t.Errorf("len(Data()) = %d", len(buf.Data()))
			}
		})
	}
}

func TestImageBuf_GetSetRGBA(t *testing.T) {
	for _, format := range []Format{FormatRGB8, FormatRGBA8} {
		t.Run(format.String(), func(t *testing.T) {
			buf, _ := NewImageBuf(4, 4, format)
			if err := buf.SetRGBA(1, 2, 200, 100, 50, 128); err != nil {
				t.Fatal(err)
			}
			r, g, b, a := buf.GetRGBA(1, 2)
			wantA := uint8(128)
			if !format.HasAlpha() {
				wantA = 255
			}
			if r != 200 || g != 100 || b != 50 || a != wantA {
				t.Errorf("GetRGBA() = (%d, %d, %d, %d), want (200, 100, 50, %d)", r, g, b, a, wantA)
			}
		})
	}
}

func TestImageBuf_SetRGBA_Gray8(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatGray8)
	_ = buf.SetRGBA(0, 0, 255, 0, 0, 255)

	want := halftone.Gray(255, 0, 0)
	if got := buf.Gray(0, 0); got != want {
		t.Errorf("Gray() = %d, want %d", got, want)
	}
	r, g, b, a := buf.GetRGBA(0, 0)
	if r != want || g != want || b != want || a != 255 {
		t.Errorf("GetRGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestImageBuf_OutOfBounds(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatRGBA8)

	if err := buf.SetRGBA(2, 0, 1, 1, 1, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRGBA(2, 0) error = %v, want ErrOutOfBounds", err)
	}
	if r, g, b, a := buf.GetRGBA(-1, 0); r|g|b|a != 0 {
		t.Error("GetRGBA(-1, 0) should be zero")
	}
	if buf.Gray(0, 5) != 0 {
		t.Error("Gray(0, 5) should be zero")
	}
	if buf.RowBytes(2) != nil {
		t.Error("RowBytes(2) should be nil")
	}
}

func TestImageBuf_GrayIgnoresAlpha(t *testing.T) {
	buf, _ := NewImageBuf(1, 1, FormatRGBA8)
	_ = buf.SetRGBA(0, 0, 100, 150, 200, 0)

	if got, want := buf.Gray(0, 0), halftone.Gray(100, 150, 200); got != want {
		t.Errorf("Gray() = %d, want %d", got, want)
	}
}

func TestImageBuf_ToGray(t *testing.T) {
	buf, _ := NewImageBuf(3, 2, FormatRGB8)
	for y := range 2 {
		for x := range 3 {
			_ = buf.SetRGBA(x, y, uint8(x*80), uint8(y*90), 30, 255)
		}
	}

	gray := buf.ToGray()
	if gray.Format() != FormatGray8 {
		t.Fatalf("ToGray().Format() = %v, want Gray8", gray.Format())
	}
	for y := range 2 {
		for x := range 3 {
			if gray.Gray(x, y) != buf.Gray(x, y) {
				t.Errorf("Gray(%d, %d) = %d, want %d", x, y, gray.Gray(x, y), buf.Gray(x, y))
			}
		}
	}
}

func TestImageBuf_Clone(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatGray8)
	_ = buf.SetRGBA(0, 0, 10, 10, 10, 255)

	clone := buf.Clone()
	_ = clone.SetRGBA(0, 0, 200, 200, 200, 255)

	if buf.Gray(0, 0) != 10 {
		t.Error("modifying clone changed the original")
	}
}
