package halftone

import (
	"time"

	"github.com/gogpu/halftone/gcode"
)

// SecondPerCut is the rule-of-thumb machining time of one dot: retract,
// move and plunge on a typical hobby router.
const SecondPerCut = time.Second

// Result holds the outputs of one halftone run.
type Result struct {
	// Preview is the rendered dot pattern, scale times the source size.
	Preview *Pixmap

	// Program is the cutter motion, or nil if G-code generation was not
	// requested. It has no preamble or postamble.
	Program *gcode.Program

	// CutCount is the number of dots that need a plunge.
	CutCount int

	// Points is the number of grid points sampled, cut or not.
	Points int

	// Rows is the number of grid rows.
	Rows int
}

// Duration estimates the machining time at perCut per dot.
func (r *Result) Duration(perCut time.Duration) time.Duration {
	return time.Duration(r.CutCount) * perCut
}
