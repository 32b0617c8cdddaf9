package menu

import (
	"errors"
	"fmt"
	"strings"
)

// cancel is a scripted answer that makes fakePrompter report cancellation.
const cancel = "\x00cancel"

// fakePrompter replays canned answers and records every prompt into a
// shared transcript. Running out of answers is cancellation.
type fakePrompter struct {
	answers []string
	pos     int
	failAt  int
	log     *transcript
}

func (p *fakePrompter) Prompt(message string) (string, bool, error) {
	p.log.add("prompt", firstLine(message))
	if p.failAt > 0 && p.pos+1 == p.failAt {
		return "", false, errors.New("terminal closed")
	}
	if p.pos >= len(p.answers) {
		return "", false, nil
	}
	a := p.answers[p.pos]
	p.pos++
	if a == cancel {
		return "", false, nil
	}
	return a, true, nil
}

// transcript collects prompts and notifications in order.
type transcript struct {
	lines    []string
	messages []string
	kinds    []Kind
}

func (t *transcript) add(kind, message string) {
	t.lines = append(t.lines, fmt.Sprintf("%s: %s", kind, message))
}

func (t *transcript) Notify(kind Kind, message string) {
	t.kinds = append(t.kinds, kind)
	t.messages = append(t.messages, message)
	t.add(kind.String(), message)
}

func (t *transcript) String() string {
	return strings.Join(t.lines, "\n") + "\n"
}

// results returns only the KindResult messages.
func (t *transcript) results() []string {
	var out []string
	for i, k := range t.kinds {
		if k == KindResult {
			out = append(out, t.messages[i])
		}
	}
	return out
}

// warnings returns only the KindWarning messages.
func (t *transcript) warnings() []string {
	var out []string
	for i, k := range t.kinds {
		if k == KindWarning {
			out = append(out, t.messages[i])
		}
	}
	return out
}

func (t *transcript) last() string {
	return t.messages[len(t.messages)-1]
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// newSession builds a controller wired to a fake prompter and transcript.
func newSession(answers ...string) (*Controller, *fakePrompter, *transcript) {
	log := &transcript{}
	p := &fakePrompter{answers: answers, log: log}
	return New(p, log), p, log
}
