package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParse_Accepted verifies inputs that must convert to a finite value.
func TestParse_Accepted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "integer", input: "42", want: 42},
		{name: "padded decimal", input: " 3.5 ", want: 3.5},
		{name: "tabs and newline", input: "\t7\n", want: 7},
		{name: "negative", input: "-12", want: -12},
		{name: "explicit plus", input: "+8", want: 8},
		{name: "leading point", input: ".5", want: 0.5},
		{name: "trailing point", input: "5.", want: 5},
		{name: "exponent", input: "1e3", want: 1000},
		{name: "negative exponent", input: "25E-1", want: 2.5},
		{name: "hex", input: "0x1F", want: 31},
		{name: "upper hex prefix", input: "0XfF", want: 255},
		{name: "octal", input: "0o17", want: 15},
		{name: "binary", input: "0b101", want: 5},
		{name: "leading zeros", input: "007", want: 7},
		{name: "non-breaking space", input: "\u00a01\u00a0", want: 1},
		{name: "byte order mark", input: "\ufeff2", want: 2},
		{name: "underflow becomes zero", input: "1e-400", want: 0},
		{name: "max float", input: "1.7976931348623157e308", want: math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.True(t, got.OK, "Parse(%q) should succeed", tt.input)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

// TestParse_Rejected verifies inputs that must fail. A failed result always
// carries NaN.
func TestParse_Rejected(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"12abc",
		"1,5",
		"1 2",
		"Infinity",
		"-Infinity",
		"inf",
		"NaN",
		"1e999",
		"-1e999",
		"1_000",
		"0x",
		"0xG1",
		"-0x10",
		"0b102",
		"0x1p-2",
		".",
		"e5",
		"1e",
		"--1",
		"\u00852",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := Parse(input)
			assert.False(t, got.OK, "Parse(%q) should fail", input)
			assert.True(t, math.IsNaN(got.Value))
		})
	}
}

// TestParse_OKIffFinite checks the ParseResult invariant over a mixed
// batch of inputs.
func TestParse_OKIffFinite(t *testing.T) {
	for _, input := range []string{"1", "x", "1e308", "1e309", "0xFFFFFFFFFFFFFFFFFFFF", " ", "-0"} {
		got := Parse(input)
		assert.Equal(t, IsFinite(got.Value), got.OK, "input %q", input)
	}
}

func TestParse_WideHexLiteral(t *testing.T) {
	got := Parse("0x10000000000000000")
	assert.True(t, got.OK)
	assert.Equal(t, math.Pow(2, 64), got.Value)
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "5", Trim("\ufeff 5\u00a0\t"))
	assert.Equal(t, "\u00855", Trim("\u00855"), "NEL is not whitespace")
	assert.Equal(t, "", Trim(" \u3000 "))
}
