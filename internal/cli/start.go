// Package cli — start.go implements the "calc start" command.
//
// The start command runs the interactive calculator menu. Answers come from
// stdin, or from a YAML script with --script. Output goes to stdout as
// colored text, or as one JSON object per line with --json. Menu strings
// can be overridden with a JSONC config file (--config, or .calc.jsonc in
// the working directory).
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/calc/internal/config"
	"github.com/shinji-kodama/calc/internal/console"
	"github.com/shinji-kodama/calc/internal/menu"
	"github.com/shinji-kodama/calc/internal/model"
	"github.com/shinji-kodama/calc/internal/script"
)

// startFlags holds the flag values for the start command.
type startFlags struct {
	// scriptPath replays answers from a YAML file instead of stdin.
	scriptPath string

	// configPath points at a JSONC config file.
	configPath string
}

// NewStartCommand creates the "start" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStartCommand() *cobra.Command {
	flags := &startFlags{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the interactive calculator menu",
		Long: `Start the interactive calculator menu.

Choose an operation by number, then enter its operands. Invalid numbers
are reported and the operation is abandoned. Enter 0 to quit; closing
input (Ctrl-D) also ends the session.

Examples:
  calc start
  calc start --script session.yaml
  calc start --config .calc.jsonc --no-color`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.scriptPath, "script", "", "Replay answers from a YAML script file")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a JSONC config file (default: ./.calc.jsonc if present)")

	return cmd
}

// runStart wires the menu controller to its collaborators and runs it.
func runStart(ctx context.Context, in io.Reader, out, errOut io.Writer, flags *startFlags) error {
	// Step 1: Resolve the message set.
	messages, err := loadMessages(flags.configPath)
	if err != nil {
		return err
	}

	// Step 2: Pick the input collaborator.
	var prompter menu.Prompter
	if flags.scriptPath != "" {
		var opts []script.Option
		if !IsJSONOutput() {
			opts = append(opts, script.WithEcho(out))
		}
		sp, err := script.Load(flags.scriptPath, opts...)
		if err != nil {
			return err
		}
		VerboseLog("Replaying %d scripted answers from %s", sp.Remaining(), flags.scriptPath)
		prompter = sp
	} else {
		promptOut := out
		if IsJSONOutput() {
			// Keep stdout parseable: prompts go to stderr.
			promptOut = errOut
		}
		prompter = console.NewLinePrompter(in, promptOut)
	}

	// Step 3: Pick the output collaborator.
	var notifier menu.Notifier
	if IsJSONOutput() {
		notifier = console.NewJSONNotifier(out)
	} else {
		notifier = console.NewTextNotifier(out, noColor)
	}

	if verbose {
		prompter, notifier = traced(prompter, notifier)
	}

	// Step 4: Run the session.
	c := menu.New(prompter, notifier,
		menu.WithMessages(messages),
		menu.WithLogger(logger),
	)
	err = c.Run(ctx)
	VerboseLog("Session ended in state %s after %d result(s)", c.State(), c.Completed())

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return model.WrapCLIError(model.ExitUserCancelled, "session cancelled", err)
		}
		return model.WrapCLIError(model.ExitGeneralError, "calculator session failed", err)
	}
	return nil
}

// traced wraps both collaborators so every answer and notification is
// logged at debug level.
func traced(p menu.Prompter, n menu.Notifier) (menu.Prompter, menu.Notifier) {
	tp := menu.PrompterFunc(func(message string) (string, bool, error) {
		text, ok, err := p.Prompt(message)
		logger.Debug("answer read", "text", text, "ok", ok)
		return text, ok, err
	})
	tn := menu.NotifierFunc(func(kind menu.Kind, message string) {
		logger.Debug("notify", "kind", kind.String(), "message", message)
		n.Notify(kind, message)
	})
	return tp, tn
}

// loadMessages applies the config lookup order: explicit path, then
// .calc.jsonc in the working directory, then defaults.
func loadMessages(path string) (menu.Messages, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Find(wd)
		}
	}
	if path == "" {
		VerboseLog("No config file, using default messages")
		return menu.DefaultMessages(), nil
	}

	VerboseLog("Loading config from %s", path)
	messages, err := config.Load(path)
	if err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			return menu.Messages{}, err
		}
		return menu.Messages{}, model.WrapCLIError(model.ExitGeneralError, "invalid config file", err)
	}
	return messages, nil
}
