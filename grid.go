package halftone

// Row is one row of the staggered sample grid.
type Row struct {
	// Index is the zero-based row number, top to bottom.
	Index int

	// Y is the source-pixel row of the dot centers.
	Y int

	// CY is the machine Y grid coordinate. It counts down from
	// height/step so that the top row of the image is furthest from the
	// machine origin.
	CY int

	// Offset is the horizontal shift of the first dot center: step/2 on
	// the first row, 0 on the next, alternating down the image.
	Offset int
}

// GridPoint is one dot center of the sample grid.
type GridPoint struct {
	Row

	// X is the source-pixel column of the dot center.
	X int

	// CX is the machine X grid coordinate, starting at 1 on every row.
	CX int
}

// Rows returns the sample rows of a width x height image with the given
// step, top to bottom. It returns nil for a non-positive step or an empty
// image.
func Rows(width, height, step int) []Row {
	if step <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	rows := make([]Row, 0, height/step+1)
	offset := step / 2
	for y, cy := step/2, height/step; y < height; y, cy = y+step, cy-1 {
		rows = append(rows, Row{Index: len(rows), Y: y, CY: cy, Offset: offset})

		// Zig-zag in x.
		if offset != 0 {
			offset = 0
		} else {
			offset = step / 2
		}
	}
	return rows
}

// Points calls fn for each dot center of r, left to right, in an image of
// the given width.
func (r Row) Points(width, step int, fn func(GridPoint)) {
	if step <= 0 {
		return
	}
	for x, cx := r.Offset, 1; x < width; x, cx = x+step, cx+1 {
		fn(GridPoint{Row: r, X: x, CX: cx})
	}
}

// Count returns the number of dot centers in r.
func (r Row) Count(width, step int) int {
	if step <= 0 || r.Offset >= width {
		return 0
	}
	return (width - r.Offset + step - 1) / step
}

// Walk calls fn for every dot center of a width x height image in
// row-major, zig-zag order.
func Walk(width, height, step int, fn func(GridPoint)) {
	for _, r := range Rows(width, height, step) {
		r.Points(width, step, fn)
	}
}

// GridSize returns the number of dot centers Walk visits.
func GridSize(width, height, step int) int {
	n := 0
	for _, r := range Rows(width, height, step) {
		n += r.Count(width, step)
	}
	return n
}
