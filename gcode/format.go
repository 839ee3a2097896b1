package gcode

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits used when a
// Formatter does not specify one. Four digits resolve 0.1 micron in
// millimetre programs and 0.0001" in inch programs.
const DefaultPrecision = 4

// maxPrecision bounds Formatter.Precision; float64 carries no more
// meaningful digits than this for machine coordinates.
const maxPrecision = 12

// Formatter prints numeric word values.
//
// A zero Formatter uses DefaultPrecision.
type Formatter struct {
	// Precision is the number of fractional digits kept before trailing
	// zeros are trimmed.
	Precision int
}

// precision returns the effective number of fractional digits.
func (f Formatter) precision() int {
	switch {
	case f.Precision <= 0:
		return DefaultPrecision
	case f.Precision > maxPrecision:
		return maxPrecision
	default:
		return f.Precision
	}
}

// Number formats v with fixed precision, trims trailing zeros and the
// decimal point, and normalizes negative zero to "0".
func (f Formatter) Number(v float64) string {
	s := strconv.FormatFloat(v, 'f', f.precision(), 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// appendNumber is Number for builders.
func (f Formatter) appendNumber(b []byte, v float64) []byte {
	return append(b, f.Number(v)...)
}
