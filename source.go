package halftone

import (
	"image"
	"image/color"
)

// Source is a read-only greyscale view of the image being halftoned.
//
// Implementations hide the pixel format; the engine only ever asks for the
// greyscale value of in-bounds pixels, with (0, 0) at the top-left corner.
type Source interface {
	// Size returns the image width and height in pixels.
	Size() (width, height int)

	// Gray returns the greyscale intensity (0 black, 255 white) of the
	// pixel at (x, y).
	Gray(x, y int) uint8
}

// Gray returns the greyscale intensity of an 8-bit RGB color.
// It uses the integer weights (11, 16, 5)/32, the same ones Qt's qGray
// uses, so dot sizes match images prepared with Qt tools bit for bit.
func Gray(r, g, b uint8) uint8 {
	return uint8((uint32(r)*11 + uint32(g)*16 + uint32(b)*5) / 32)
}

// ImageSource adapts a standard library image to a Source.
// Colors are converted to non-premultiplied 8-bit RGB before the
// greyscale conversion; alpha is otherwise ignored.
func ImageSource(img image.Image) Source {
	return stdSource{img: img, bounds: img.Bounds()}
}

// stdSource is the Source returned by ImageSource.
type stdSource struct {
	img    image.Image
	bounds image.Rectangle
}

func (s stdSource) Size() (int, int) {
	return s.bounds.Dx(), s.bounds.Dy()
}

func (s stdSource) Gray(x, y int) uint8 {
	px, py := s.bounds.Min.X+x, s.bounds.Min.Y+y

	switch img := s.img.(type) {
	case *image.Gray:
		return img.GrayAt(px, py).Y
	case *image.NRGBA:
		c := img.NRGBAAt(px, py)
		return Gray(c.R, c.G, c.B)
	}

	c := color.NRGBAModel.Convert(s.img.At(px, py)).(color.NRGBA)
	return Gray(c.R, c.G, c.B)
}
