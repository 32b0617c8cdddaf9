package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/calc/internal/model"
)

// File is the YAML document structure.
type File struct {
	// Responses are returned in order, one per prompt. nil entries
	// (YAML null or ~) mean cancellation.
	Responses []*string `yaml:"responses"`
}

// Prompter replays File.Responses.
type Prompter struct {
	responses []*string
	pos       int
	echo      io.Writer
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithEcho writes every prompt and the replayed answer to w, so the
// session reads like an interactive one.
func WithEcho(w io.Writer) Option {
	return func(p *Prompter) {
		p.echo = w
	}
}

// New creates a Prompter over responses.
func New(responses []*string, opts ...Option) *Prompter {
	p := &Prompter{responses: responses}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads a script file from disk.
//
// Returns a CLIError with ExitScriptNotFound if the file does not exist.
func Load(path string, opts ...Option) (*Prompter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitScriptNotFound,
				fmt.Sprintf("script file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script file %s: %w", path, err)
	}
	return New(f.Responses, opts...), nil
}

// Parse decodes a script document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Prompt returns the next scripted answer.
func (p *Prompter) Prompt(message string) (string, bool, error) {
	if p.echo != nil {
		fmt.Fprintln(p.echo, message)
	}

	if p.pos >= len(p.responses) {
		p.echoAnswer("(end of script)")
		return "", false, nil
	}

	r := p.responses[p.pos]
	p.pos++
	if r == nil {
		p.echoAnswer("(cancel)")
		return "", false, nil
	}
	p.echoAnswer(*r)
	return *r, true, nil
}

// Remaining returns how many answers have not been replayed yet.
func (p *Prompter) Remaining() int {
	return len(p.responses) - p.pos
}

func (p *Prompter) echoAnswer(answer string) {
	if p.echo == nil {
		return
	}
	fmt.Fprintf(p.echo, "> %s\n", strings.TrimRight(answer, "\n"))
}
