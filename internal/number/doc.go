// Package number converts raw text into validated numbers and renders
// numbers back into text.
//
// Parse applies the numeric coercion rules users of a browser calculator
// expect: surrounding whitespace is ignored, decimal and
// exponent forms are accepted, and 0x/0o/0b integer literals are read in
// their base. Anything that does not produce a finite value is a parse
// failure. Empty input is a parse failure too, not zero.
//
// Format is the inverse used for reporting: the shortest representation
// that round-trips, switching to exponent notation for very large and very
// small magnitudes.
package number
