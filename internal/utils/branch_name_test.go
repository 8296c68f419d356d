package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
)

func TestFormatDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spaces replaced with hyphens",
			input:    "fix login bug",
			expected: "fix-login-bug",
		},
		{
			name:     "already formatted passes through",
			input:    "fix-login-bug",
			expected: "fix-login-bug",
		},
		{
			name:     "trimmed and lowercased",
			input:    "  Add Login Page  ",
			expected: "add-login-page",
		},
		{
			name:     "every space becomes a hyphen",
			input:    "a  b",
			expected: "a--b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := FormatDescription(tt.input)
			require.Equal(t, tt.expected, result)
			require.Equal(t, result, FormatDescription(result), "formatting must be idempotent")
		})
	}
}

func TestBranchName(t *testing.T) {
	t.Parallel()

	conv := config.DefaultConvention()
	require.Equal(t, "feature/WEBCHAN-4521-add-login-page", BranchName(conv, "4521", "feature", "Add Login Page"))
	require.Equal(t, "hotfix/WEBCHAN-1-x", BranchName(conv, "1", "hotfix", "x"))
}

func TestTicketIDFromBranch(t *testing.T) {
	t.Parallel()

	conv := config.DefaultConvention()

	tests := []struct {
		name     string
		branch   string
		expected string
	}{
		{
			name:     "id followed by description",
			branch:   "feature/WEBCHAN-1234-login-fix",
			expected: "1234",
		},
		{
			name:     "segment ends at next slash",
			branch:   "feature/webchan-007/extra",
			expected: "007",
		},
		{
			name:     "marker is case-insensitive",
			branch:   "bugfix/WebChan-99-fix-typo",
			expected: "99",
		},
		{
			name:     "digits after the id are kept",
			branch:   "task/WEBCHAN-12-v2",
			expected: "122",
		},
		{
			name:     "first marker wins",
			branch:   "release/webchan-5/webchan-6",
			expected: "5",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := TicketIDFromBranch(conv, tt.branch)
			require.NoError(t, err)
			require.Equal(t, tt.expected, id)
		})
	}
}

func TestTicketIDFromBranchMissing(t *testing.T) {
	t.Parallel()

	conv := config.DefaultConvention()

	for _, branch := range []string{
		"feature/no-ticket-here",
		"main",
		"HEAD",
		"WEBCHAN-12-no-leading-slash",
		"feature/webchan-abc",
		"feature/webchan-/123",
	} {
		branch := branch
		t.Run(branch, func(t *testing.T) {
			t.Parallel()
			_, err := TicketIDFromBranch(conv, branch)
			require.ErrorIs(t, err, wcerrors.ErrTicketIDMissing)
		})
	}
}

func TestCommitMessage(t *testing.T) {
	t.Parallel()

	conv := config.DefaultConvention()
	require.Equal(t, "fix(WEBCHAN-99): correct spelling", CommitMessage(conv, "fix", "99", "correct spelling"))
}
