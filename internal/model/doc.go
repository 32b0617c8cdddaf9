// Package model defines the domain types and value objects for the calc CLI.
//
// This package contains pure data structures with no external dependencies.
// Nothing here outlives a single menu iteration or a single one-shot command:
// selectors are read, dispatched and discarded.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
