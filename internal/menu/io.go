package menu

// Kind classifies a message sent to a Notifier so adapters can style it.
type Kind int

const (
	// KindInfo is a neutral message: welcome and farewells.
	KindInfo Kind = iota

	// KindResult carries the outcome of an operation.
	KindResult

	// KindWarning is a recoverable input problem (bad number, bad option).
	KindWarning

	// KindError is an operation that could not produce a result.
	KindError
)

// String returns the lowercase kind name used in JSON output and
// transcripts.
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindResult:
		return "result"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Prompter is the blocking input collaborator. Prompt shows message and
// waits for an answer.
//
// ok == false means the user cancelled (closed the prompt, hit EOF, ran out
// of scripted answers). err is reserved for I/O failures and ends the
// session.
type Prompter interface {
	Prompt(message string) (text string, ok bool, err error)
}

// Notifier is the fire-and-forget output collaborator.
type Notifier interface {
	Notify(kind Kind, message string)
}

// PrompterFunc adapts a plain function to the Prompter interface.
type PrompterFunc func(message string) (string, bool, error)

// Prompt calls f(message).
func (f PrompterFunc) Prompt(message string) (string, bool, error) {
	return f(message)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(kind Kind, message string)

// Notify calls f(kind, message).
func (f NotifierFunc) Notify(kind Kind, message string) {
	f(kind, message)
}
