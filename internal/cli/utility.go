// Package cli — utility.go implements the "prime", "even" and "vowels" commands.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/calc/internal/arith"
	"github.com/shinji-kodama/calc/internal/model"
	"github.com/shinji-kodama/calc/internal/number"
	"github.com/shinji-kodama/calc/internal/prime"
	"github.com/shinji-kodama/calc/internal/vowel"
)

// vowelsFlags holds the flag values for the vowels command.
type vowelsFlags struct {
	// fold strips accents before counting, so "ó" counts as "o".
	fold bool
}

// NewPrimeCommand creates the "prime" command.
func NewPrimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prime N",
		Short: "Check whether N is a prime number",
		Long: `Check whether N is a prime number by trial division.

Examples:
  calc prime 7
  calc prime 10 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInteger(args[0])
			if err != nil {
				return err
			}

			isPrime := prime.IsPrime(n)
			VerboseLog("Trial division of %d finished", n)

			if IsJSONOutput() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"number": n,
					"prime":  isPrime,
				})
			}
			if isPrime {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is prime\n", n)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is not prime\n", n)
			}
			return nil
		},
	}
}

// NewEvenCommand creates the "even" command.
func NewEvenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "even N",
		Short: "Check whether N is even",
		Long: `Check whether the integer N is even.

Examples:
  calc even 10
  calc even 0x11 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInteger(args[0])
			if err != nil {
				return err
			}

			even := arith.IsEven(float64(n))

			if IsJSONOutput() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"number": n,
					"even":   even,
				})
			}
			if even {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is even\n", n)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is odd\n", n)
			}
			return nil
		},
	}
}

// NewVowelsCommand creates the "vowels" command.
func NewVowelsCommand() *cobra.Command {
	flags := &vowelsFlags{}

	cmd := &cobra.Command{
		Use:   "vowels TEXT...",
		Short: "Count the vowels in TEXT",
		Long: `Count the vowels (a, e, i, o, u in either case) in TEXT.

Accented vowels are not counted unless --fold is given.

Examples:
  calc vowels Programación          # 4
  calc vowels --fold Programación   # 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			count := vowel.Count(text)
			if flags.fold {
				count = vowel.CountFolded(text)
			}

			if IsJSONOutput() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"text":   text,
					"vowels": count,
					"folded": flags.fold,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.fold, "fold", false, "Count accented vowels as their base letter")

	return cmd
}

// parseInteger parses arg as a number and requires it to be an integer
// that fits in int64.
func parseInteger(arg string) (int64, error) {
	res := number.Parse(arg)
	if !res.OK || res.Value != math.Trunc(res.Value) ||
		res.Value < math.MinInt64 || res.Value >= math.MaxInt64 {
		return 0, model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("invalid integer %q", arg))
	}
	return int64(res.Value), nil
}
