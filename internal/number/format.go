package number

import (
	"math"
	"strconv"
	"strings"
)

const (
	// exponentUpper is the magnitude from which Format switches to
	// exponent notation.
	exponentUpper = 1e21

	// exponentLower is the magnitude below which non-zero values are
	// written in exponent notation.
	exponentLower = 1e-6
)

// Format renders v using the shortest decimal representation that
// round-trips.
//
// Examples:
//
//	9                   → "9"
//	0.1 + 0.2           → "0.30000000000000004"
//	1e21                → "1e+21"
//	0.0000001           → "1e-7"
//	math.Inf(-1)        → "-Infinity"
//	math.NaN()          → "NaN"
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// Covers negative zero as well.
		return "0"
	}

	abs := math.Abs(v)
	if abs >= exponentUpper || abs < exponentLower {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent removes the zero padding strconv puts in two-digit
// exponents ("1e-07" → "1e-7").
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + string(sign) + exp
}
