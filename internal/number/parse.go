package number

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ParseResult is the outcome of a single Parse call.
//
// Invariant: OK is true iff Value is finite. When OK is false, Value is NaN
// so that an unchecked result can never masquerade as a real operand.
type ParseResult struct {
	OK    bool
	Value float64
}

// decimalRegex matches the decimal literal grammar: optional sign, digits
// with an optional fraction (either side of the point may be empty, but not
// both) and an optional exponent. Go-only forms such as digit separators,
// hex floats and "inf"/"nan" spellings are deliberately absent.
var decimalRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Parse converts raw text into a finite number.
//
// Leading and trailing whitespace is trimmed. Empty (or whitespace-only)
// input fails. Unsigned 0x, 0o and 0b prefixes select base 16, 8 and 2.
// Values that overflow to ±Inf fail; values that underflow become 0.
func Parse(raw string) ParseResult {
	s := Trim(raw)
	if s == "" {
		return failed()
	}

	if base, digits, ok := splitRadixPrefix(s); ok {
		return parseRadix(digits, base)
	}

	if !decimalRegex.MatchString(s) {
		return failed()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return failed()
	}
	return finite(v)
}

// Trim removes the leading and trailing whitespace Parse ignores.
func Trim(raw string) string {
	return strings.TrimFunc(raw, isSpace)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// failed returns the canonical failure result.
func failed() ParseResult {
	return ParseResult{OK: false, Value: math.NaN()}
}

// finite wraps v into a ParseResult, enforcing the OK/finite invariant.
func finite(v float64) ParseResult {
	if !IsFinite(v) {
		return failed()
	}
	return ParseResult{OK: true, Value: v}
}

// splitRadixPrefix detects a 0x/0o/0b prefix (either case) and returns
// the base and the remaining digits.
func splitRadixPrefix(s string) (int, string, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	default:
		return 0, "", false
	}
}

// parseRadix reads an unsigned integer literal in the given base.
// big.Int keeps literals wider than 64 bits exact until the final
// rounding to float64.
func parseRadix(digits string, base int) ParseResult {
	if digits == "" {
		return failed()
	}
	for _, r := range digits {
		if digitValue(r) >= base {
			return failed()
		}
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return failed()
	}
	v, _ := new(big.Float).SetInt(n).Float64()
	return finite(v)
}

// digitValue returns the numeric value of a hex digit, or 99 for
// anything that is not one.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return 99
	}
}

// isSpace matches the whitespace set trimmed before numeric conversion:
// Unicode spaces and line terminators plus the byte order mark. NEL is
// not whitespace for this purpose.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
