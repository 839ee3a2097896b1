// Package gcode models the small G-code dialect emitted by the halftone
// engine and writes complete machine programs.
//
// # Programs
//
// A [Program] is an append-only list of [Block] values. Each block is one
// line of output: a command such as G00 followed by zero or more address
// words. Words are printed without separators, the way most hobby
// controllers accept them:
//
//	G00Z5
//	G00X1.25Y3.75
//	G01Z-0.251
//
// Numbers are printed by a [Formatter] with a fixed number of fractional
// digits. Trailing zeros are trimmed, so whole numbers print without a
// decimal point.
//
// # Envelopes
//
// The engine emits only cutter motion. An [Envelope] wraps that motion with
// the machine-specific header (comments, custom preamble, feed, spindle
// speed, coolant) and footer (coolant off, program end) expected in an
// .ngc file.
package gcode
