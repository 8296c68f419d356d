package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	wcerrors "webchan.dev/wcgit/internal/errors"
)

// DefaultQueryTimeout bounds read-only git queries. Commands run on the
// user's behalf have no timeout since they may open an editor or hooks.
const DefaultQueryTimeout = 30 * time.Second

// Runner defines the version-control operations the helpers need.
// This allows the actions to be used with both real git and mock implementations.
type Runner interface {
	// IsRepository reports whether the working directory holds a repository marker
	IsRepository() bool
	// CurrentBranch returns the short name of HEAD, or "HEAD" when detached
	CurrentBranch(ctx context.Context) (string, error)
	// Run executes cmd with the terminal attached
	Run(ctx context.Context, cmd Command) error
	// WorkingDir returns the directory commands run in
	WorkingDir() string
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

var _ Runner = (*CommandRunner)(nil)

// NewCommandRunner creates a CommandRunner bound to workingDir and the process's standard streams
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{
		workingDir: workingDir,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithStreams returns a copy of the runner wired to the given streams
func (r *CommandRunner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *CommandRunner {
	c := *r
	c.stdin = stdin
	c.stdout = stdout
	c.stderr = stderr
	return &c
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// IsRepository reports whether a .git entry exists in the working directory
func (r *CommandRunner) IsRepository() bool {
	return IsRepository(r.workingDir)
}

// CurrentBranch returns the short name of the checked out branch
func (r *CommandRunner) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := CurrentBranch(r.workingDir)
	if err == nil {
		return branch, nil
	}
	// go-git cannot open every repository layout git supports; ask git itself
	return r.Output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// Run executes cmd interactively. stderr is also captured for the returned error.
func (r *CommandRunner) Run(ctx context.Context, cmd Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c := exec.CommandContext(ctx, "git", cmd.Args...)
	if r.workingDir != "" {
		c.Dir = r.workingDir
	}
	var stderr bytes.Buffer
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = io.MultiWriter(r.stderr, &stderr)

	if err := c.Run(); err != nil {
		return wcerrors.NewGitCommandError("git", cmd.Args, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

// Output executes a git query and returns its trimmed stdout
func (r *CommandRunner) Output(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultQueryTimeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		c.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", wcerrors.NewGitCommandError("git", args, strings.TrimSpace(stderr.String()), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
