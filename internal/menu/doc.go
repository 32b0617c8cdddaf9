// Package menu implements the interactive calculator loop.
//
// A Controller reads a selector through a Prompter, collects operands,
// dispatches to package arith and reports through a Notifier, then loops
// until the user exits or cancels. Both collaborators are interfaces so the
// loop can be driven by a terminal (internal/console), a YAML script
// (internal/script) or a test fake without changes.
//
// State machine:
//
//	AwaitingSelection → CollectingOperands → Reporting → AwaitingSelection
//	AwaitingSelection | CollectingOperands → Exited (terminal)
//
// Failures never escape the loop. A bad operand abandons the current
// operation, an unknown selector is reported, division by zero is reported
// as a result, and cancellation at any required prompt ends the session.
package menu
