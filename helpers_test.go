package halftone

// funcSource is a Source backed by a function.
type funcSource struct {
	w, h int
	fn   func(x, y int) uint8
}

func (s funcSource) Size() (int, int)    { return s.w, s.h }
func (s funcSource) Gray(x, y int) uint8 { return s.fn(x, y) }

// flat returns a w x h source of constant grey v.
func flat(w, h int, v uint8) Source {
	return funcSource{w: w, h: h, fn: func(int, int) uint8 { return v }}
}

// pattern returns a w x h source with a deterministic mix of tones,
// including fully black patches.
func pattern(w, h int) Source {
	return funcSource{w: w, h: h, fn: func(x, y int) uint8 {
		if (x/5+y/7)%4 == 0 {
			return 0
		}
		return uint8((x*37 + y*91 + x*y) % 256)
	}}
}

// testParams returns the parameters of the reference scenario with the
// given step.
func testParams(step int) Params {
	return Params{
		Step:          step,
		FullToolDepth: 1.0,
		FullToolWidth: 1.0,
		MaxCutPercent: 0.5,
		MinDotGap:     0.1,
		FastZ:         5.0,
	}
}
