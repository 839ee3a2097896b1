package halftone

// DotSize returns the dot size for the point (x, y) of src, in [0, 1].
//
// The dot size is the mean greyscale intensity of the square
// [x-radius, x+radius) x [y-radius, y+radius), scaled so that white is 1.
// A radius of 2 averages the pixels (x-2, y-2) through (x+1, y+1). Pixels
// outside the image are left out of both the sum and the count, so dots
// along the border average fewer pixels rather than darkening.
//
// The mean is taken with integer division before scaling, which keeps the
// reported sizes on the 1/255 lattice. An empty window yields 0.
func DotSize(src Source, x, y, radius int) float64 {
	width, height := src.Size()

	x0, x1 := max(x-radius, 0), min(x+radius, width)
	y0, y1 := max(y-radius, 0), min(y+radius, height)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	total := 0
	for i := x0; i < x1; i++ {
		for j := y0; j < y1; j++ {
			total += int(src.Gray(i, j))
		}
	}

	count := (x1 - x0) * (y1 - y0)
	return float64(total/count) / 255.0
}
