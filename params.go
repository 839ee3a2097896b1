package halftone

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the halftoner.
var (
	// ErrInvalidParameter is returned when parameters or the source image
	// cannot produce a grid: non-positive step or scale, empty image,
	// out-of-range or non-finite tool values.
	ErrInvalidParameter = errors.New("halftone: invalid parameter")

	// ErrSizeMismatch is returned by RenderInto when the preview is not
	// exactly scale times the source size.
	ErrSizeMismatch = errors.New("halftone: preview size mismatch")
)

// Params are the tool and cut parameters for one halftone run.
//
// This diagram shows which measurements correspond to which fields:
//
//	       ||| <-- Cutting tool
//	       |||
//	  _____|||_____    __________
//	 \             /       ^
//	| \           / |      |
//	|  \         /  |      |
//	|   \       /   |     Full
//	|    \     /    |     Tool
//	|     \   /     |     Depth
//	|      \ /      |      |
//	|       .       |      v
//	|               |   ----------
//	|     Full      |
//	|<----Tool----->|
//	      Width
type Params struct {
	// Step is the number of source pixels between dot centers.
	Step int

	// FullToolDepth is the depth the tool can cut.
	FullToolDepth float64

	// FullToolWidth is the width of the tool at full depth.
	FullToolWidth float64

	// MaxCutPercent is the fraction (0..1) of full depth and width a
	// single dot may use.
	MaxCutPercent float64

	// MinDotGap is the minimum gap between adjacent dots.
	MinDotGap float64

	// FastZ is the height at which the tool can be moved quickly.
	FastZ float64
}

// Validate reports whether p can drive a halftone run.
// All failures wrap ErrInvalidParameter.
func (p Params) Validate() error {
	if p.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidParameter, p.Step)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"full tool depth", p.FullToolDepth},
		{"full tool width", p.FullToolWidth},
		{"max cut percent", p.MaxCutPercent},
		{"min dot gap", p.MinDotGap},
		{"fast z", p.FastZ},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, f.name)
		}
	}

	if p.FullToolDepth < 0 {
		return fmt.Errorf("%w: full tool depth %g is negative", ErrInvalidParameter, p.FullToolDepth)
	}
	if p.FullToolWidth < 0 {
		return fmt.Errorf("%w: full tool width %g is negative", ErrInvalidParameter, p.FullToolWidth)
	}
	if p.MaxCutPercent < 0 || p.MaxCutPercent > 1 {
		return fmt.Errorf("%w: max cut percent %g outside [0, 1]", ErrInvalidParameter, p.MaxCutPercent)
	}
	return nil
}

// MaxDotSize returns the diameter of the largest dot the tool will cut.
func (p Params) MaxDotSize() float64 {
	return p.FullToolWidth * p.MaxCutPercent
}

// Pitch returns the distance between adjacent dot centers in machine units.
func (p Params) Pitch() float64 {
	return p.MaxDotSize() + p.MinDotGap
}

// MaxCutDepth returns the depth of a full-intensity dot.
func (p Params) MaxCutDepth() float64 {
	return p.FullToolDepth * p.MaxCutPercent
}

// OutputSize returns the physical width and height of the carving made
// from a width x height source image.
func (p Params) OutputSize(width, height int) (w, h float64) {
	if p.Step <= 0 {
		return 0, 0
	}
	step := float64(p.Step)
	return float64(width) * p.Pitch() / step, float64(height) * p.Pitch() / step
}
