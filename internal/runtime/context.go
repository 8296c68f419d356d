package runtime

import (
	"context"
	"fmt"
	"os"

	"webchan.dev/wcgit/internal/config"
	"webchan.dev/wcgit/internal/git"
	"webchan.dev/wcgit/internal/output"
	"webchan.dev/wcgit/internal/tui"
)

// Context provides access to the convention, git, prompts and output for an action
type Context struct {
	Context    context.Context
	Convention config.Convention
	Git        git.Runner
	Prompter   tui.Prompter
	Splog      *output.Splog
}

// NewContext wires a context to the process's standard streams and working directory
func NewContext(ctx context.Context, settings config.Settings) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	palette := tui.NewPalette(os.Stdout, settings.Color)
	splog, err := output.NewSplogWithSettings(os.Stdout, palette, settings)
	if err != nil {
		// A broken log file location must not block the helper
		splog = output.NewSplog(os.Stdout, palette)
		splog.Warn("file logging disabled: %v", err)
	}

	conv := config.DefaultConvention()
	format := tui.NewFormatter(conv, palette)

	return &Context{
		Context:    ctx,
		Convention: conv,
		Git:        git.NewCommandRunner(wd),
		Prompter:   tui.NewPrompter(format, os.Stdin, os.Stdout, tui.IsTTY()),
		Splog:      splog,
	}, nil
}

// Messages returns the prompt templates for the context's convention
func (c *Context) Messages() config.Messages {
	return c.Convention.Messages()
}

// Close releases the log file
func (c *Context) Close() error {
	if c.Splog == nil {
		return nil
	}
	return c.Splog.Close()
}
