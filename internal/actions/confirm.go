package actions

import (
	"context"
	"os"
	"os/signal"

	"webchan.dev/wcgit/internal/git"
	"webchan.dev/wcgit/internal/runtime"
)

// confirmAndRun prints cmd, waits for confirmation and runs cmd once.
// SIGINT during the wait cancels instead of killing the process.
func confirmAndRun(ctx *runtime.Context, cmd git.Command, prompt string) error {
	ctx.Splog.Command(cmd.String())

	if err := confirm(ctx, prompt); err != nil {
		ctx.Splog.Record("canceled at confirmation", "command", cmd.String())
		return err
	}

	ctx.Splog.Record("running command", "args", cmd.Args)
	return ctx.Git.Run(ctx.Context, cmd)
}

func confirm(ctx *runtime.Context, prompt string) error {
	parent := ctx.Context
	if parent == nil {
		parent = context.Background()
	}
	sigCtx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	return ctx.Prompter.Confirm(sigCtx, prompt)
}
