package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize returns b scaled to the given width, keeping the aspect ratio.
// It uses Catmull-Rom resampling, which keeps edges sharp enough for
// coarse dot grids. Height is rounded and never drops below one pixel.
// A copy is returned if the width already matches.
func (b *ImageBuf) Resize(width int) (*ImageBuf, error) {
	if width <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width == b.width {
		return b.Clone(), nil
	}

	height := max((b.height*width+b.width/2)/b.width, 1)
	rect := image.Rect(0, 0, width, height)

	var dst draw.Image
	if b.format.IsGrayscale() {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewNRGBA(rect)
	}
	draw.CatmullRom.Scale(dst, rect, b.ToStdImage(), image.Rect(0, 0, b.width, b.height), draw.Src, nil)

	return FromStdImage(dst)
}
