package halftone

import "github.com/gogpu/halftone/gcode"

// rowOutput is what rendering one row produces besides preview pixels.
type rowOutput struct {
	points  int
	cuts    int
	program *gcode.Program
}

// rowRenderer renders rows of one run. Rows touch disjoint preview
// pixels, so a single rowRenderer may render different rows concurrently.
type rowRenderer struct {
	src    Source
	dst    *Pixmap
	width  int
	scale  int
	params Params
	gcode  bool

	radius int
	maxDot float64
	pitch  float64
	maxCut float64
}

func newRowRenderer(dst *Pixmap, src Source, scale int, p Params, emitGCode bool) *rowRenderer {
	width, _ := src.Size()
	return &rowRenderer{
		src:    src,
		dst:    dst,
		width:  width,
		scale:  scale,
		params: p,
		gcode:  emitGCode,
		radius: p.Step / 2,
		maxDot: p.MaxDotSize(),
		pitch:  p.Pitch(),
		maxCut: p.MaxCutDepth(),
	}
}

// render draws every dot of r and, if enabled, emits its toolpath.
func (rr *rowRenderer) render(r Row) rowOutput {
	var out rowOutput
	if rr.gcode {
		out.program = gcode.NewProgram(3 * r.Count(rr.width, rr.params.Step))
	}

	writeY := true
	r.Points(rr.width, rr.params.Step, func(pt GridPoint) {
		out.points++
		ds := DotSize(rr.src, pt.X, pt.Y, rr.radius)

		// Nothing to cut: leave the area black.
		if ds == 0 {
			rr.fill(pt, toneBlack)
			return
		}

		out.cuts++
		if out.program != nil {
			rr.emit(out.program, pt, ds, writeY)
			writeY = false
		}
		rr.drawDot(pt, ds)
	})
	return out
}

// emit appends the retract, move and plunge for one dot. The Y word is
// modal, so only the first move of a row carries it.
func (rr *rowRenderer) emit(p *gcode.Program, pt GridPoint, ds float64, writeY bool) {
	p.Rapid(gcode.Z(rr.params.FastZ))

	cutX := float64(pt.CX) * rr.pitch
	if pt.Offset != 0 {
		cutX -= rr.maxDot / 2.0
	}
	if writeY {
		p.Rapid(gcode.X(cutX), gcode.Y(float64(pt.CY)*rr.pitch))
	} else {
		p.Rapid(gcode.X(cutX))
	}

	p.Linear(gcode.Z(-rr.maxCut * ds))
}

// window returns the preview-space square covered by pt.
func (rr *rowRenderer) window(pt GridPoint) (x0, x1, y0, y1 int) {
	s := rr.scale
	return s * (pt.X - rr.radius), s * (pt.X + rr.radius), s * (pt.Y - rr.radius), s * (pt.Y + rr.radius)
}

// fill sets the preview square of pt to v.
func (rr *rowRenderer) fill(pt GridPoint, v uint8) {
	x0, x1, y0, y1 := rr.window(pt)
	for i := x0; i < x1; i++ {
		for j := y0; j < y1; j++ {
			rr.dst.SetGray(i, j, v)
		}
	}
}

// drawDot draws a filled circle of radius radius*ds*scale centered on pt.
// Pixels within half a unit of the squared radius get a grey border; the
// rest of the square is black.
func (rr *rowRenderer) drawDot(pt GridPoint, ds float64) {
	s := float64(rr.scale)
	r := float64(rr.radius)
	ds2 := r * r * ds * ds * s * s
	cx, cy := rr.scale*pt.X, rr.scale*pt.Y

	x0, x1, y0, y1 := rr.window(pt)
	for i := x0; i < x1; i++ {
		for j := y0; j < y1; j++ {
			dx, dy := i-cx, j-cy
			d2 := float64(dx*dx + dy*dy)

			switch {
			case d2 < ds2-0.5:
				rr.dst.SetGray(i, j, toneWhite)
			case d2 < ds2+0.5:
				rr.dst.SetGray(i, j, toneBorder)
			default:
				rr.dst.SetGray(i, j, toneBlack)
			}
		}
	}
}
