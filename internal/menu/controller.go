package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shinji-kodama/calc/internal/arith"
	"github.com/shinji-kodama/calc/internal/model"
	"github.com/shinji-kodama/calc/internal/number"
)

// State is the controller's position in the menu loop.
type State int

const (
	// StateAwaitingSelection waits for a selector at the main menu.
	StateAwaitingSelection State = iota

	// StateCollectingOperands reads the operands of the chosen operation.
	StateCollectingOperands

	// StateReporting emits the result of an operation.
	StateReporting

	// StateExited is terminal. Run has returned and will not loop again.
	StateExited
)

// String returns the state name used in debug logs.
func (s State) String() string {
	switch s {
	case StateAwaitingSelection:
		return "awaiting-selection"
	case StateCollectingOperands:
		return "collecting-operands"
	case StateReporting:
		return "reporting"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// step tells the loop whether to show the menu again or stop.
type step int

const (
	stepContinue step = iota
	stepExit
)

// input is the outcome of reading one operand.
type input int

const (
	inputOK input = iota
	inputInvalid
	inputCancelled
)

// Controller drives one calculator session.
type Controller struct {
	prompter Prompter
	notifier Notifier
	messages Messages
	logger   *slog.Logger

	state State

	// completed counts reported results over the session.
	completed *arith.Counter
}

// Option configures a Controller.
type Option func(*Controller)

// WithMessages replaces the user-facing strings. Empty fields keep their
// defaults.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		c.messages = m.Merge(DefaultMessages())
	}
}

// WithLogger sets the logger used for state transitions. By default
// nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Controller in StateAwaitingSelection.
func New(prompter Prompter, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		prompter:  prompter,
		notifier:  notifier,
		messages:  DefaultMessages(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:     StateAwaitingSelection,
		completed: arith.NewCounter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state. After Run returns it is StateExited.
func (c *Controller) State() State {
	return c.state
}

// Completed returns how many results have been reported so far.
func (c *Controller) Completed() int {
	return c.completed.Value()
}

// Run shows the welcome message and loops over the menu until the user
// selects exit or cancels.
//
// It returns nil on a normal exit or user cancellation, ctx.Err() when the
// context was cancelled, and a wrapped error when the Prompter fails.
// Run must not be called again once it has returned.
func (c *Controller) Run(ctx context.Context) error {
	if c.state == StateExited {
		return errors.New("menu: session already exited")
	}

	c.notifier.Notify(KindInfo, fmt.Sprintf(c.messages.Welcome, c.messages.AppName))
	c.setState(StateAwaitingSelection)

	for {
		raw, ok, err := c.prompt(ctx, c.messages.Menu)
		if err != nil {
			c.setState(StateExited)
			return err
		}
		if !ok {
			c.exit(c.messages.Cancelled)
			return ctx.Err()
		}

		next, err := c.dispatch(ctx, raw)
		if err != nil {
			c.setState(StateExited)
			return err
		}
		if next == stepExit {
			return ctx.Err()
		}
	}
}

// dispatch handles one menu answer.
func (c *Controller) dispatch(ctx context.Context, raw string) (step, error) {
	sel, err := model.ParseSelector(raw)
	if err != nil {
		c.logger.Debug("invalid selector", "input", raw)
		c.notifier.Notify(KindWarning, c.messages.InvalidOption)
		return stepContinue, nil
	}

	c.logger.Debug("selector accepted", "selector", sel.String(), "operation", sel.Operation())

	switch {
	case sel == model.SelectorExit:
		c.exit(c.messages.Farewell)
		return stepExit, nil
	case sel.IsBinary():
		return c.runBinary(ctx, sel)
	case sel == model.SelectorPower:
		return c.runPower(ctx)
	default:
		return c.runMean(ctx)
	}
}

// runBinary collects two operands for add, subtract, multiply or divide.
func (c *Controller) runBinary(ctx context.Context, sel model.Selector) (step, error) {
	c.setState(StateCollectingOperands)

	first, second := c.messages.FirstNumber, c.messages.SecondNumber
	if sel == model.SelectorDivide {
		first, second = c.messages.Dividend, c.messages.Divisor
	}

	a, res, err := c.readOperand(ctx, first)
	if err != nil {
		return stepExit, err
	}
	if res != inputOK {
		return c.abandon(res), nil
	}
	b, res, err := c.readOperand(ctx, second)
	if err != nil {
		return stepExit, err
	}
	if res != inputOK {
		return c.abandon(res), nil
	}

	switch sel {
	case model.SelectorAdd:
		c.report(sel, number.Format(arith.Add(a, b)))
	case model.SelectorSubtract:
		c.report(sel, number.Format(arith.Subtract(a, b)))
	case model.SelectorMultiply:
		c.report(sel, number.Format(arith.Multiply(a, b)))
	case model.SelectorDivide:
		q, err := arith.SafeDivide(a, b)
		if errors.Is(err, arith.ErrDivisionByZero) {
			c.report(sel, c.messages.DivisionByZero)
		} else {
			c.report(sel, number.Format(q))
		}
	}
	return stepContinue, nil
}

// runPower reads a required base and an optional exponent. A cancelled
// or invalid exponent falls back to arith.DefaultExponent.
func (c *Controller) runPower(ctx context.Context) (step, error) {
	c.setState(StateCollectingOperands)

	base, res, err := c.readOperand(ctx, c.messages.Base)
	if err != nil {
		return stepExit, err
	}
	if res != inputOK {
		return c.abandon(res), nil
	}

	exp, res, err := c.readOperand(ctx, c.messages.Exponent)
	if err != nil {
		return stepExit, err
	}
	if ctx.Err() != nil {
		return c.abandon(inputCancelled), nil
	}

	if res == inputOK {
		c.report(model.SelectorPower, number.Format(arith.Power(base, exp)))
	} else {
		c.logger.Debug("using default exponent", "exponent", arith.DefaultExponent)
		c.report(model.SelectorPower, number.Format(arith.Power(base)))
	}
	return stepContinue, nil
}

// runMean reads a comma-separated list and reports its mean. Bad tokens
// are reported one by one and skipped.
func (c *Controller) runMean(ctx context.Context) (step, error) {
	c.setState(StateCollectingOperands)

	raw, ok, err := c.prompt(ctx, c.messages.NumberList)
	if err != nil {
		return stepExit, err
	}
	if !ok {
		return c.abandon(inputCancelled), nil
	}

	nums, invalid := CollectNumbers(raw)
	for _, tok := range invalid {
		c.notifier.Notify(KindWarning, fmt.Sprintf(c.messages.InvalidToken, tok))
	}
	if len(nums) == 0 {
		c.notifier.Notify(KindError, c.messages.NoValidNumbers)
		c.setState(StateAwaitingSelection)
		return stepContinue, nil
	}

	c.logger.Debug("numbers collected", "valid", len(nums), "invalid", len(invalid))
	c.report(model.SelectorMean, number.Format(arith.Mean(nums)))
	return stepContinue, nil
}

// CollectNumbers splits raw on commas, trims each token with number.Trim
// and parses it.
// It returns the valid numbers in input order and the trimmed tokens that
// failed to parse.
func CollectNumbers(raw string) (nums []float64, invalid []string) {
	for _, part := range strings.Split(raw, ",") {
		tok := number.Trim(part)
		res := number.Parse(tok)
		if !res.OK {
			invalid = append(invalid, tok)
			continue
		}
		nums = append(nums, res.Value)
	}
	return nums, invalid
}

// readOperand prompts for one number. A parse failure is reported
// immediately and yields inputInvalid.
func (c *Controller) readOperand(ctx context.Context, message string) (float64, input, error) {
	raw, ok, err := c.prompt(ctx, message)
	if err != nil {
		return 0, inputCancelled, err
	}
	if !ok {
		return 0, inputCancelled, nil
	}

	res := number.Parse(raw)
	if !res.OK {
		c.logger.Debug("operand rejected", "input", raw)
		c.notifier.Notify(KindWarning, c.messages.InvalidNumber)
		return 0, inputInvalid, nil
	}
	return res.Value, inputOK, nil
}

// prompt asks the Prompter, treating a done context as cancellation.
func (c *Controller) prompt(ctx context.Context, message string) (string, bool, error) {
	if ctx.Err() != nil {
		return "", false, nil
	}
	text, ok, err := c.prompter.Prompt(message)
	if err != nil {
		return "", false, fmt.Errorf("menu: reading input: %w", err)
	}
	return text, ok, nil
}

// abandon ends the current operation. Cancellation also ends the session.
func (c *Controller) abandon(res input) step {
	if res == inputCancelled {
		c.exit(c.messages.Cancelled)
		return stepExit
	}
	c.setState(StateAwaitingSelection)
	return stepContinue
}

// report emits a result line and counts it.
func (c *Controller) report(sel model.Selector, text string) {
	c.setState(StateReporting)
	c.notifier.Notify(KindResult, fmt.Sprintf(c.messages.Result, text))
	n := c.completed.Next()
	c.logger.Debug("result reported", "operation", sel.Operation(), "result", text, "completed", n)
	c.setState(StateAwaitingSelection)
}

// exit emits message and enters the terminal state.
func (c *Controller) exit(message string) {
	c.notifier.Notify(KindInfo, message)
	c.setState(StateExited)
	c.logger.Debug("session finished", "completed", c.completed.Value())
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.logger.Debug("state transition", "from", c.state.String(), "to", s.String())
	c.state = s
}
