// Package halftone converts raster images into halftone dot patterns for
// CNC engraving.
//
// # Overview
//
// The source image is sampled on a staggered grid: dot centers are step
// pixels apart and every other row is shifted half a step, giving the
// honeycomb layout of a printed halftone. At each center the mean
// brightness of the surrounding step x step square becomes the dot size.
// Bright areas get large dots, which a V-shaped tool cuts by plunging
// deeper.
//
// Each run produces three outputs:
//   - a preview Pixmap with one antialiased white disc per dot
//   - optionally, a gcode.Program with a retract/move/plunge group per dot
//   - the number of cuts, for time estimates
//
// # Quick Start
//
//	img, _, _ := image.Decode(f)
//
//	h := halftone.New(halftone.WithGCode(true))
//	res, err := h.Render(halftone.ImageSource(img), 2, halftone.Params{
//	    Step:          4,
//	    FullToolDepth: 0.125,
//	    FullToolWidth: 0.25,
//	    MaxCutPercent: 0.5,
//	    MinDotGap:     0.01,
//	    FastZ:         0.1,
//	})
//	if err != nil {
//	    return err
//	}
//	_ = res.Preview.SavePNG("preview.png")
//	_ = gcode.Envelope{Feed: 10, Speed: 10000}.WriteFile("out.ngc", res.Program, gcode.Formatter{})
//
// # Machine coordinates
//
// Dot X positions are CX*Pitch, shifted left by half the maximum dot size on
// offset rows. Y positions are CY*Pitch, with CY counting down from the top
// of the image, and are written once per row; controllers keep the last Y
// until it changes. Cut depth is linear in dot size, reaching
// FullToolDepth*MaxCutPercent for white.
//
// # Concurrency
//
// Rows cover disjoint preview pixels, so [WithWorkers] renders them in
// parallel. Per-row toolpaths are merged back in row order, so the program
// is byte-identical to a single-worker run.
package halftone
