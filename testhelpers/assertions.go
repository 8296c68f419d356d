package testhelpers

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must panics if err is not nil, otherwise returns val.
// Useful in test setup where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	require.NoError(t, err, "Failed to list branches")

	branches := []string{}
	for _, b := range strings.Split(output, "\n") {
		if b = strings.TrimSpace(b); b != "" {
			branches = append(branches, b)
		}
	}

	want := append([]string(nil), expected...)
	sort.Strings(branches)
	sort.Strings(want)
	require.Equal(t, want, branches, "Branches do not match")
}

// ExpectCommitCount asserts the number of commits reachable from HEAD
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("rev-list", "--count", "HEAD")
	require.NoError(t, err, "Failed to count commits")
	count, err := strconv.Atoi(output)
	require.NoError(t, err)
	require.Equal(t, expected, count, "Commit count does not match")
}
