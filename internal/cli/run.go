package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
	"webchan.dev/wcgit/internal/runtime"
	"webchan.dev/wcgit/internal/utils"
)

// Exit codes returned by Execute
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// ContextFactory builds the runtime context a command runs with
type ContextFactory func(ctx context.Context, settings config.Settings) (*runtime.Context, error)

// reportedError marks an error already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// run loads settings, builds a runtime context and calls fn with it.
// Failures from fn are reported through the context's splog.
func run(cmd *cobra.Command, newContext ContextFactory, debug bool, fn func(ctx *runtime.Context) error) error {
	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return err
	}
	if debug {
		settings.Debug = true
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, err := newContext(parent, settings)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()

	ctx.Splog.Debug("starting %s", cmd.Name())
	err = fn(ctx)
	if err == nil || isInterrupt(err) {
		return err
	}

	ctx.Splog.Record("helper failed", "command", cmd.Name(), "validation", wcerrors.IsValidation(err), "error", err.Error())
	ctx.Splog.Error("%s", err.Error())

	var typed *wcerrors.TypeNotAllowedError
	if errors.As(err, &typed) {
		if suggestion := utils.SuggestType(typed.Value, typed.Allowed); suggestion != "" {
			ctx.Splog.Tip("Did you mean %s?", suggestion)
		}
	}
	return &reportedError{err: err}
}

func isInterrupt(err error) bool {
	return errors.Is(err, wcerrors.ErrCanceled) || errors.Is(err, wcerrors.ErrAborted)
}

// Execute runs cmd and maps the outcome to a process exit code.
// Cancellation and aborts exit quietly with 130.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	var reported *reportedError
	switch {
	case err == nil:
		return ExitOK
	case isInterrupt(err):
		return ExitInterrupted
	case errors.As(err, &reported):
		return ExitFailure
	default:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return ExitFailure
	}
}
