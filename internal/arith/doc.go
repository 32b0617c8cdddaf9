// Package arith implements the calculator's arithmetic operations.
//
// Every function is pure and uses IEEE-754 double precision. The only
// operation with a failure mode is SafeDivide, which returns
// ErrDivisionByZero instead of producing ±Inf or NaN. Counter is the one
// stateful type: it owns a private count that only moves forward.
package arith
