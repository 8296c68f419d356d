package git

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsRepository reports whether dir contains a .git entry.
// Worktrees and submodules use a .git file rather than a directory; both count.
func IsRepository(dir string) bool {
	if dir == "" {
		dir = "."
	}
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// CurrentBranch returns the short branch name HEAD points at, using go-git.
// A detached HEAD yields "HEAD", matching `git rev-parse --abbrev-ref HEAD`.
// Unborn branches (no commits yet) still report their name.
func CurrentBranch(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "HEAD", nil
}
