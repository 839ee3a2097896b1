// Package image loads and prepares source images for halftoning.
//
// Decoded images are kept in an ImageBuf: a contiguous byte buffer in one of
// a few 8-bit formats, with a greyscale accessor that matches the halftone
// engine's weighting.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// bytesPerPixel is indexed by Format.
var bytesPerPixel = [formatCount]int{
	FormatGray8: 1,
	FormatRGB8:  3,
	FormatRGBA8: 4,
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return bytesPerPixel[f]
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA8
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f == FormatGray8
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}
