package console

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shinji-kodama/calc/internal/menu"
)

// TextNotifier prints one line per notification. Results are green,
// warnings yellow, errors red and informational messages bold.
type TextNotifier struct {
	out    io.Writer
	colors map[menu.Kind]*color.Color
}

// NewTextNotifier creates a TextNotifier writing to out. When noColor is
// true, escape sequences are never emitted; otherwise fatih/color decides
// based on whether stdout is a terminal.
func NewTextNotifier(out io.Writer, noColor bool) *TextNotifier {
	colors := map[menu.Kind]*color.Color{
		menu.KindInfo:    color.New(color.Bold),
		menu.KindResult:  color.New(color.FgHiGreen),
		menu.KindWarning: color.New(color.FgYellow),
		menu.KindError:   color.New(color.FgRed),
	}
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}
	return &TextNotifier{out: out, colors: colors}
}

// Notify prints message in the color bound to kind.
func (n *TextNotifier) Notify(kind menu.Kind, message string) {
	c, ok := n.colors[kind]
	if !ok {
		fmt.Fprintln(n.out, message)
		return
	}
	_, _ = c.Fprintln(n.out, message)
}

// notificationJSON is the JSON-lines record written by JSONNotifier.
type notificationJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// JSONNotifier writes each notification as a single-line JSON object.
type JSONNotifier struct {
	out io.Writer
}

// NewJSONNotifier creates a JSONNotifier writing to out.
func NewJSONNotifier(out io.Writer) *JSONNotifier {
	return &JSONNotifier{out: out}
}

// Notify writes {"kind": ..., "message": ...} followed by a newline.
func (n *JSONNotifier) Notify(kind menu.Kind, message string) {
	data, err := json.Marshal(notificationJSON{Kind: kind.String(), Message: message})
	if err != nil {
		return
	}
	fmt.Fprintln(n.out, string(data))
}
