package actions

import (
	"fmt"

	"webchan.dev/wcgit/internal/git"
	"webchan.dev/wcgit/internal/runtime"
	"webchan.dev/wcgit/internal/utils"
)

// CommitPlan holds the validated fields of a commit and the command that creates it
type CommitPlan struct {
	Branch     string
	TicketID   string
	CommitType string
	Message    string
	// FullMessage is the composed "<type>(<PREFIX>-<id>): <message>"
	FullMessage string
	Command     git.Command
}

// PrepareCommit reads the ticket id from the current branch, collects and validates
// the commit type and message, and composes the commit command.
// Nothing is executed.
func PrepareCommit(ctx *runtime.Context) (*CommitPlan, error) {
	conv := ctx.Convention
	msgs := ctx.Messages()

	branch, err := ctx.Git.CurrentBranch(ctx.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read current branch: %w", err)
	}
	ticketID, err := utils.TicketIDFromBranch(conv, branch)
	if err != nil {
		return nil, err
	}
	ctx.Splog.Record("ticket id from branch", "branch", branch, "ticket_id", ticketID)

	raw, err := ctx.Prompter.Prompt(ctx.Context, msgs.CommitType, ticketID, "")
	if err != nil {
		return nil, err
	}
	commitType, err := utils.ValidateCommitType(conv, raw)
	if err != nil {
		return nil, err
	}
	ctx.Splog.Record("commit type accepted", "commit_type", commitType)

	raw, err = ctx.Prompter.Prompt(ctx.Context, msgs.CommitMessage, ticketID, commitType)
	if err != nil {
		return nil, err
	}
	message, err := utils.ValidateText(utils.FieldCommitMessage, raw)
	if err != nil {
		return nil, err
	}

	full := utils.CommitMessage(conv, commitType, ticketID, message)
	return &CommitPlan{
		Branch:      branch,
		TicketID:    ticketID,
		CommitType:  commitType,
		Message:     message,
		FullMessage: full,
		Command:     git.CommitCommand(full),
	}, nil
}

// CreateCommitAction runs the commit helper: prepare, show the command, wait for
// confirmation, then commit.
// A canceled confirmation returns errors.ErrCanceled and runs nothing.
func CreateCommitAction(ctx *runtime.Context) (*CommitPlan, error) {
	plan, err := PrepareCommit(ctx)
	if err != nil {
		return nil, err
	}

	if err := confirmAndRun(ctx, plan.Command, ctx.Messages().ConfirmCommit); err != nil {
		return plan, err
	}
	return plan, nil
}
