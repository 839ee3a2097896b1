package image

import (
	"errors"

	"github.com/gogpu/halftone"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a source image held in memory.
//
// ImageBuf implements halftone.Source. It is safe for concurrent reads;
// writes (SetRGBA) require external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

var _ halftone.Source = (*ImageBuf)(nil)

// NewImageBuf creates a new zeroed image buffer with the given dimensions
// and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Size returns the image dimensions as (width, height).
func (b *ImageBuf) Size() (int, int) {
	return b.width, b.height
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// pixelOffset returns the byte offset of pixel (x, y), or -1 if the
// coordinates are out of bounds.
func (b *ImageBuf) pixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// For grayscale formats, r=g=b=gray. For formats without alpha, a=255.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	o := b.pixelOffset(x, y)
	if o < 0 {
		return 0, 0, 0, 0
	}

	px := b.data[o:]
	if b.format.IsGrayscale() {
		return px[0], px[0], px[0], 255
	}
	if !b.format.HasAlpha() {
		return px[0], px[1], px[2], 255
	}
	return px[0], px[1], px[2], px[3]
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// Grayscale formats store halftone.Gray(r, g, b).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	o := b.pixelOffset(x, y)
	if o < 0 {
		return ErrOutOfBounds
	}

	if b.format.IsGrayscale() {
		b.data[o] = halftone.Gray(r, g, bl)
		return nil
	}
	b.data[o], b.data[o+1], b.data[o+2] = r, g, bl
	if b.format.HasAlpha() {
		b.data[o+3] = a
	}
	return nil
}

// Gray returns the greyscale intensity at (x, y) using halftone.Gray.
// Alpha is ignored. Returns 0 if coordinates are out of bounds.
func (b *ImageBuf) Gray(x, y int) uint8 {
	o := b.pixelOffset(x, y)
	if o < 0 {
		return 0
	}
	if b.format.IsGrayscale() {
		return b.data[o]
	}
	return halftone.Gray(b.data[o], b.data[o+1], b.data[o+2])
}

// ToGray returns a Gray8 copy of b. Halftoning a Gray8 buffer skips the
// per-sample color conversion; each pixel is sampled once per dot.
func (b *ImageBuf) ToGray() *ImageBuf {
	if b.format.IsGrayscale() {
		return b.Clone()
	}

	out, _ := NewImageBuf(b.width, b.height, FormatGray8)
	for y := range b.height {
		row := out.RowBytes(y)
		for x := range b.width {
			row[x] = b.Gray(x, y)
		}
	}
	return out
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &ImageBuf{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}
