package config

import (
	"fmt"
	"strings"
)

// Convention describes the ticket naming scheme shared by the branch and commit helpers.
// Values are returned by DefaultConvention and are never modified after construction;
// the list accessors hand out copies.
type Convention struct {
	ticketPrefix string
	branchTypes  []string
	commitTypes  []string
}

var (
	defaultBranchTypes = []string{"feature", "bugfix", "hotfix", "task", "release"}
	defaultCommitTypes = []string{"feat", "fix", "chore", "docs", "test", "refactor"}
)

// DefaultTicketPrefix is the ticket key used in branch names and commit messages
const DefaultTicketPrefix = "WEBCHAN"

// DefaultConvention returns the WEBCHAN convention
func DefaultConvention() Convention {
	return Convention{
		ticketPrefix: DefaultTicketPrefix,
		branchTypes:  append([]string(nil), defaultBranchTypes...),
		commitTypes:  append([]string(nil), defaultCommitTypes...),
	}
}

// TicketPrefix returns the ticket key, e.g. "WEBCHAN"
func (c Convention) TicketPrefix() string {
	return c.ticketPrefix
}

// TicketKey formats a ticket id as "<prefix>-<id>"
func (c Convention) TicketKey(id string) string {
	return c.ticketPrefix + "-" + id
}

// TicketMarker is the lowercase marker searched for in branch names, e.g. "/webchan-"
func (c Convention) TicketMarker() string {
	return "/" + strings.ToLower(c.ticketPrefix) + "-"
}

// BranchTypes returns the allowed branch types in their defined order
func (c Convention) BranchTypes() []string {
	return append([]string(nil), c.branchTypes...)
}

// CommitTypes returns the allowed commit types in their defined order
func (c Convention) CommitTypes() []string {
	return append([]string(nil), c.commitTypes...)
}

// Messages holds the prompt templates for both helpers
type Messages struct {
	TicketID      string
	BranchType    string
	Description   string
	CommitType    string
	CommitMessage string
	ConfirmBranch string
	ConfirmCommit string
}

// Messages builds the prompt templates for this convention
func (c Convention) Messages() Messages {
	return Messages{
		TicketID:      fmt.Sprintf("Enter %s ID: ", c.ticketPrefix),
		BranchType:    fmt.Sprintf("Branch type (%s): ", strings.Join(c.branchTypes, ", ")),
		Description:   "Enter a short branch description (no quotes): ",
		CommitType:    fmt.Sprintf("Commit type (%s): ", strings.Join(c.commitTypes, ", ")),
		CommitMessage: "Commit message (no quotes): ",
		ConfirmBranch: "Press Enter to create branch or Ctrl+C to cancel...",
		ConfirmCommit: "Press Enter to commit or Ctrl+C to cancel...",
	}
}
