package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single answer. bufio.Scanner's default of 64 KiB
// is too small for long comma-separated number lists.
const maxLineSize = 16 * 1024 * 1024

// LinePrompter reads answers line by line from a reader.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	marker  string
}

// NewLinePrompter creates a LinePrompter that writes prompts to out and
// reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	// bufio.Scanner handles both LF and CRLF line endings.
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LinePrompter{
		scanner: scanner,
		out:     out,
		marker:  "> ",
	}
}

// Prompt prints message followed by an input marker and waits for a line.
// EOF is cancellation (ok == false, err == nil).
func (p *LinePrompter) Prompt(message string) (string, bool, error) {
	fmt.Fprintln(p.out, message)
	fmt.Fprint(p.out, p.marker)

	if p.scanner.Scan() {
		return strings.TrimRight(p.scanner.Text(), "\r"), true, nil
	}

	// Terminate the marker line so the farewell starts on its own line.
	fmt.Fprintln(p.out)
	if err := p.scanner.Err(); err != nil {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	return "", false, nil
}
