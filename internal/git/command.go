package git

import (
	"github.com/kballard/go-shellquote"
)

// Command is a git invocation held as a discrete argument list.
// Arguments are passed to the process as-is and never re-parsed by a shell.
type Command struct {
	Args []string
}

// CheckoutNewBranchCommand returns `git checkout -b <branch>`
func CheckoutNewBranchCommand(branch string) Command {
	return Command{Args: []string{"checkout", "-b", branch}}
}

// CommitCommand returns `git commit -m <message>`
func CommitCommand(message string) Command {
	return Command{Args: []string{"commit", "-m", message}}
}

// Argv returns the full argument vector including the program name
func (c Command) Argv() []string {
	return append([]string{"git"}, c.Args...)
}

// String renders the command quoted for a POSIX shell, for display only
func (c Command) String() string {
	return shellquote.Join(c.Argv()...)
}
