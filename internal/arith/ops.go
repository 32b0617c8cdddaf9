package arith

import (
	"errors"
	"math"
)

// DefaultExponent is used by Power when no exponent is given.
const DefaultExponent = 2.0

// ErrDivisionByZero is returned by SafeDivide for a zero divisor.
// Callers match it with errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Power returns base raised to exp. With no exponent, DefaultExponent is
// used; exponents after the first are ignored.
func Power(base float64, exp ...float64) float64 {
	e := DefaultExponent
	if len(exp) > 0 {
		e = exp[0]
	}
	return math.Pow(base, e)
}

// SafeDivide returns a / b, or ErrDivisionByZero when b is zero
// (negative zero included).
func SafeDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Mean returns the arithmetic mean of nums. An empty slice yields 0.
func Mean(nums []float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total / float64(len(nums))
}

// IsEven reports whether n is an even integer.
func IsEven(n float64) bool {
	return math.Mod(n, 2) == 0
}
