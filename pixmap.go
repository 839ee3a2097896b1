package halftone

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
)

// opaque is the alpha byte of every RGB32 pixel.
const opaque = 0xff000000

// Preview tones.
const (
	toneBlack  uint8 = 0
	toneBorder uint8 = 127
	toneWhite  uint8 = 255
)

// Pixmap is an RGB32 pixel buffer holding a halftone preview.
//
// Each pixel is stored as 0xffRRGGBB. Pixmap implements image.Image so it
// can be handed to any standard encoder or drawing package.
//
// Thread safety: concurrent writes to disjoint pixels are safe; anything
// else requires external synchronization.
type Pixmap struct {
	width  int
	height int
	data   []uint32
}

// NewPixmap creates a new opaque black pixmap with the given dimensions.
// Negative dimensions are treated as zero. It panics if width*height
// overflows int.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	if width > 0 && height > math.MaxInt/width {
		panic(fmt.Sprintf("halftone: pixmap size %dx%d overflows", width, height))
	}
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
	p.Fill(toneBlack)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the width and height of the pixmap.
func (p *Pixmap) Size() (int, int) {
	return p.width, p.height
}

// Data returns the raw pixel data (0xffRRGGBB, row-major).
func (p *Pixmap) Data() []uint32 {
	return p.data
}

// Pixel returns the RGB32 value at (x, y), or 0 if out of bounds.
func (p *Pixmap) Pixel(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// SetGray sets the pixel at (x, y) to the grey level v.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetGray(x, y int, v uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = grayRGB32(v)
}

// Gray returns the greyscale intensity at (x, y), which makes a Pixmap
// usable as a Source.
func (p *Pixmap) Gray(x, y int) uint8 {
	v := p.Pixel(x, y)
	return Gray(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Fill sets every pixel to the grey level v.
func (p *Pixmap) Fill(v uint8) {
	c := grayRGB32(v)
	for i := range p.data {
		p.data[i] = c
	}
}

// grayRGB32 packs a grey level into an RGB32 pixel.
func grayRGB32(v uint8) uint32 {
	c := uint32(v)
	return opaque | c<<16 | c<<8 | c
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, v := range p.data {
		o := i * 4
		img.Pix[o+0] = uint8(v >> 16)
		img.Pix[o+1] = uint8(v >> 8)
		img.Pix[o+2] = uint8(v)
		img.Pix[o+3] = uint8(v >> 24)
	}
	return img
}

// EncodePNG encodes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("halftone: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("halftone: create file: %w", err)
	}

	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	v := p.Pixel(x, y)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
