package halftone

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/halftone/gcode"
	"github.com/gogpu/halftone/internal/parallel"
)

// Preview size limits. Render rejects a scale that would exceed them.
const (
	MaxPreviewSide   = 1 << 20
	MaxPreviewPixels = 1 << 30
)

// Halftoner converts images to halftone previews and dot-cutting toolpaths.
//
// A Halftoner holds only configuration; every Render call is an
// independent, synchronous pass. It is safe for concurrent use.
type Halftoner struct {
	gcode   bool
	workers int
	log     *slog.Logger
}

// New creates a Halftoner.
//
// Log levels used:
//   - [slog.LevelDebug]: per-run geometry (grid, workers, pitch)
//   - [slog.LevelInfo]: run summary (cuts, program length)
//   - [slog.LevelWarn]: rejected parameters
func New(opts ...Option) *Halftoner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = newNopLogger()
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return &Halftoner{
		gcode:   o.gcode,
		workers: o.workers,
		log:     o.logger,
	}
}

// Workers returns the number of goroutines rows are rendered on.
func (h *Halftoner) Workers() int {
	return h.workers
}

// Render halftones src into a new preview scale times its size.
func (h *Halftoner) Render(src Source, scale int, p Params) (*Result, error) {
	width, height, err := h.validate(src, scale, p)
	if err != nil {
		return nil, err
	}

	dst := NewPixmap(width*scale, height*scale)
	res := h.run(dst, src, scale, p)
	res.Preview = dst
	return res, nil
}

// RenderInto halftones src into dst, which must be exactly scale times the
// size of src. Every pixel of dst is overwritten. dst is left untouched if
// an error is returned.
func (h *Halftoner) RenderInto(dst *Pixmap, src Source, scale int, p Params) (*Result, error) {
	width, height, err := h.validate(src, scale, p)
	if err != nil {
		return nil, err
	}
	if dst == nil || dst.Width() != width*scale || dst.Height() != height*scale {
		err := fmt.Errorf("%w: need %dx%d", ErrSizeMismatch, width*scale, height*scale)
		h.log.Warn("halftone: rejected preview", "err", err)
		return nil, err
	}

	dst.Fill(toneBlack)
	res := h.run(dst, src, scale, p)
	res.Preview = dst
	return res, nil
}

// validate checks everything run relies on and returns the source size.
func (h *Halftoner) validate(src Source, scale int, p Params) (width, height int, err error) {
	defer func() {
		if err != nil {
			h.log.Warn("halftone: rejected parameters", "err", err)
		}
	}()

	if err := p.Validate(); err != nil {
		return 0, 0, err
	}
	if scale < 1 {
		return 0, 0, fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalidParameter, scale)
	}
	if src == nil {
		return 0, 0, fmt.Errorf("%w: nil source image", ErrInvalidParameter)
	}

	width, height = src.Size()
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: empty source image %dx%d", ErrInvalidParameter, width, height)
	}
	if scale > MaxPreviewSide/max(width, height) ||
		int64(width*scale)*int64(height*scale) > MaxPreviewPixels {
		return 0, 0, fmt.Errorf("%w: %dx%d preview at scale %d is too large", ErrInvalidParameter, width, height, scale)
	}
	return width, height, nil
}

// run walks the grid. Inputs have been validated and dst is black.
func (h *Halftoner) run(dst *Pixmap, src Source, scale int, p Params) *Result {
	width, height := src.Size()
	rows := Rows(width, height, p.Step)
	rr := newRowRenderer(dst, src, scale, p, h.gcode)

	workers := min(h.workers, len(rows))
	h.log.Debug("halftone: rendering",
		"width", width, "height", height, "step", p.Step, "scale", scale,
		"rows", len(rows), "workers", workers, "pitch", p.Pitch())

	outs := make([]rowOutput, len(rows))
	if workers <= 1 {
		for i, r := range rows {
			outs[i] = rr.render(r)
		}
	} else {
		pool := parallel.NewWorkerPool(workers)
		work := make([]func(), len(rows))
		for i, r := range rows {
			work[i] = func() { outs[i] = rr.render(r) }
		}
		pool.ExecuteAll(work)
		pool.Close()
	}

	res := &Result{Rows: len(rows)}
	blocks := 1
	for _, out := range outs {
		res.CutCount += out.cuts
		res.Points += out.points
		blocks += out.program.Len()
	}

	if h.gcode {
		res.Program = gcode.NewProgram(blocks)
		for _, out := range outs {
			res.Program.Concat(out.program)
		}
		// Finally, make sure the tool is parked at a safe height.
		res.Program.Rapid(gcode.Z(p.FastZ))
	}

	h.log.Info("halftone: done", "cuts", res.CutCount, "blocks", res.Program.Len())
	return res
}
