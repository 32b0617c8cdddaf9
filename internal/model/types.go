// Package model defines the domain types for the calc CLI.
//
// These types are shared by the interactive menu (internal/menu) and the
// one-shot cobra commands (internal/cli), so both surfaces agree on the
// names of operations and on the exit codes they produce.
package model

import (
	"fmt"
	"strings"
)

// Selector is the single-character code that chooses a menu operation.
// The set is closed: "0" through "6". Any other text is invalid.
type Selector string

const (
	// SelectorExit ends the menu loop permanently.
	SelectorExit Selector = "0"

	// SelectorAdd sums two operands.
	SelectorAdd Selector = "1"

	// SelectorSubtract subtracts the second operand from the first.
	SelectorSubtract Selector = "2"

	// SelectorMultiply multiplies two operands.
	SelectorMultiply Selector = "3"

	// SelectorDivide divides the dividend by the divisor, reporting
	// division by zero as a result rather than failing.
	SelectorDivide Selector = "4"

	// SelectorPower raises a base to an optional exponent (default 2).
	SelectorPower Selector = "5"

	// SelectorMean averages a comma-separated list of numbers.
	SelectorMean Selector = "6"
)

// String returns the raw selector code.
func (s Selector) String() string {
	return string(s)
}

// IsValid checks whether the Selector is one of the seven menu codes.
func (s Selector) IsValid() bool {
	switch s {
	case SelectorExit, SelectorAdd, SelectorSubtract, SelectorMultiply,
		SelectorDivide, SelectorPower, SelectorMean:
		return true
	default:
		return false
	}
}

// Operation returns the operation name bound to the selector
// ("add", "subtract", ...). The exit selector maps to "exit" and
// invalid selectors map to the empty string.
func (s Selector) Operation() string {
	switch s {
	case SelectorExit:
		return "exit"
	case SelectorAdd:
		return "add"
	case SelectorSubtract:
		return "subtract"
	case SelectorMultiply:
		return "multiply"
	case SelectorDivide:
		return "divide"
	case SelectorPower:
		return "power"
	case SelectorMean:
		return "mean"
	default:
		return ""
	}
}

// IsBinary reports whether the selector takes exactly two required operands.
func (s Selector) IsBinary() bool {
	switch s {
	case SelectorAdd, SelectorSubtract, SelectorMultiply, SelectorDivide:
		return true
	default:
		return false
	}
}

// ParseSelector trims the raw menu answer and converts it to a Selector.
// Returns an error if the trimmed text is not one of the menu codes.
func ParseSelector(raw string) (Selector, error) {
	sel := Selector(strings.TrimSpace(raw))
	if !sel.IsValid() {
		return sel, fmt.Errorf("invalid selector: %q (valid: 0-6)", raw)
	}
	return sel, nil
}

// ExitCode defines the CLI exit codes. Scripts can use them to tell a bad
// argument apart from a division by zero or a missing file.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates an argument was not a finite number.
	ExitInvalidInput ExitCode = 2

	// ExitConfigNotFound indicates the --config file does not exist.
	ExitConfigNotFound ExitCode = 3

	// ExitScriptNotFound indicates the --script file does not exist.
	ExitScriptNotFound ExitCode = 4

	// ExitDivisionByZero indicates a one-shot division had a zero divisor.
	ExitDivisionByZero ExitCode = 5

	// ExitUserCancelled indicates the user cancelled an interactive prompt.
	ExitUserCancelled ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
