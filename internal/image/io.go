package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	// Registered decoders for Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// Formats lists the file formats Decode recognizes.
var Formats = []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"}

// Load loads an image from the given file path, detecting the format from
// its content.
func Load(path string) (*ImageBuf, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
// It returns the image and the format name.
func Decode(r io.Reader) (*ImageBuf, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}

	buf, err := FromStdImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
// Gray images become Gray8, and everything else becomes non-premultiplied
// RGBA8.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Fast path for grayscale images
	if gray, ok := img.(*image.Gray); ok {
		buf, err := NewImageBuf(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			start := y * gray.Stride
			copy(buf.RowBytes(y), gray.Pix[start:start+width])
		}
		return buf, nil
	}

	buf, err := NewImageBuf(width, height, FormatRGBA8)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := y * nrgba.Stride
			copy(buf.RowBytes(y), nrgba.Pix[start:start+width*4])
		}
		return buf, nil
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return buf, nil
}

// ToStdImage converts the ImageBuf to a standard library image.Image.
// Returns *image.Gray for Gray8 and *image.NRGBA otherwise.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format.IsGrayscale() {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	for y := range b.height {
		for x := range b.width {
			r, g, bl, a := b.GetRGBA(x, y)
			off := y*nrgba.Stride + x*4
			nrgba.Pix[off], nrgba.Pix[off+1], nrgba.Pix[off+2], nrgba.Pix[off+3] = r, g, bl, a
		}
	}
	return nrgba
}
