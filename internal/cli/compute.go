// Package cli — compute.go implements the one-shot arithmetic commands:
// add, sub, mul, div, pow and mean.
//
// Each command parses its arguments with the same rules as the interactive
// menu, so "calc add 0x10 1" and the menu agree. Bad arguments exit with
// code 2, a zero divisor with code 5.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/calc/internal/arith"
	"github.com/shinji-kodama/calc/internal/menu"
	"github.com/shinji-kodama/calc/internal/model"
	"github.com/shinji-kodama/calc/internal/number"
)

// binaryOperation describes a two-operand subcommand.
type binaryOperation struct {
	use     string
	aliases []string
	short   string
	op      string
	fn      func(a, b float64) (float64, error)
}

// binaryOperations are registered on the root command in this order.
var binaryOperations = []binaryOperation{
	{
		use: "add A B", aliases: []string{"sum"}, short: "Add two numbers",
		op: model.SelectorAdd.Operation(),
		fn: func(a, b float64) (float64, error) { return arith.Add(a, b), nil },
	},
	{
		use: "sub A B", aliases: []string{"subtract"}, short: "Subtract B from A",
		op: model.SelectorSubtract.Operation(),
		fn: func(a, b float64) (float64, error) { return arith.Subtract(a, b), nil },
	},
	{
		use: "mul A B", aliases: []string{"multiply"}, short: "Multiply two numbers",
		op: model.SelectorMultiply.Operation(),
		fn: func(a, b float64) (float64, error) { return arith.Multiply(a, b), nil },
	},
	{
		use: "div A B", aliases: []string{"divide"}, short: "Divide A by B",
		op: model.SelectorDivide.Operation(),
		fn: arith.SafeDivide,
	},
}

// resultJSON is the JSON output of every arithmetic command.
type resultJSON struct {
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`

	// Result is a number when finite and its text form ("Infinity", "NaN")
	// otherwise, since JSON has no literal for those.
	Result interface{} `json:"result"`
}

// newBinaryCommand builds the cobra command for one binary operation.
func newBinaryCommand(bo binaryOperation) *cobra.Command {
	return &cobra.Command{
		Use:     bo.use,
		Aliases: bo.aliases,
		Short:   bo.short,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}

			v, err := bo.fn(operands[0], operands[1])
			if errors.Is(err, arith.ErrDivisionByZero) {
				return model.WrapCLIError(model.ExitDivisionByZero, "cannot divide by zero", err)
			}
			if err != nil {
				return err
			}

			VerboseLog("%s(%s, %s) = %s", bo.op, args[0], args[1], number.Format(v))
			return printResult(cmd.OutOrStdout(), bo.op, operands, v)
		},
	}
}

// NewPowCommand creates the "pow" command. The exponent is optional and
// defaults to arith.DefaultExponent.
func NewPowCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "pow BASE [EXPONENT]",
		Aliases: []string{"power"},
		Short:   "Raise BASE to EXPONENT (default 2)",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}

			var v float64
			if len(operands) == 2 {
				v = arith.Power(operands[0], operands[1])
			} else {
				VerboseLog("No exponent given, using %s", number.Format(arith.DefaultExponent))
				v = arith.Power(operands[0])
			}
			return printResult(cmd.OutOrStdout(), model.SelectorPower.Operation(), operands, v)
		},
	}
}

// NewMeanCommand creates the "mean" command. Arguments may be separate
// numbers, comma-separated lists, or both. Invalid entries are reported
// on stderr and skipped, like in the interactive menu.
func NewMeanCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mean N1 [N2 ...]",
		Aliases: []string{"avg"},
		Short:   "Average a list of numbers",
		Long: `Average a list of numbers.

Examples:
  calc mean 10 20 30
  calc mean 10,20,30
  calc mean "10, x, 30"     # x is reported and skipped`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, invalid := menu.CollectNumbers(strings.Join(args, ","))
			for _, tok := range invalid {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %q is not a valid number, skipped\n", tok)
			}
			if len(nums) == 0 {
				return model.NewCLIError(model.ExitInvalidInput, "no valid numbers given")
			}

			return printResult(cmd.OutOrStdout(), model.SelectorMean.Operation(), nums, arith.Mean(nums))
		},
	}
}

// parseOperands converts every argument with number.Parse.
func parseOperands(args []string) ([]float64, error) {
	operands := make([]float64, 0, len(args))
	for _, arg := range args {
		res := number.Parse(arg)
		if !res.OK {
			return nil, model.NewCLIError(model.ExitInvalidInput,
				fmt.Sprintf("invalid number %q", arg))
		}
		operands = append(operands, res.Value)
	}
	return operands, nil
}

// printResult writes the result as plain text or JSON.
func printResult(w io.Writer, op string, operands []float64, v float64) error {
	if !IsJSONOutput() {
		fmt.Fprintln(w, number.Format(v))
		return nil
	}

	var result interface{} = v
	if !number.IsFinite(v) {
		result = number.Format(v)
	}
	return printJSON(w, resultJSON{Operation: op, Operands: operands, Result: result})
}
