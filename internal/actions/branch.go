package actions

import (
	wcerrors "webchan.dev/wcgit/internal/errors"
	"webchan.dev/wcgit/internal/git"
	"webchan.dev/wcgit/internal/runtime"
	"webchan.dev/wcgit/internal/utils"
)

// BranchPlan holds the validated fields of a branch and the command that creates it
type BranchPlan struct {
	TicketID    string
	BranchType  string
	Description string
	BranchName  string
	Command     git.Command
}

// PrepareBranch checks for a repository, collects and validates the ticket id,
// branch type and description, and composes the checkout command.
// Nothing is executed.
func PrepareBranch(ctx *runtime.Context) (*BranchPlan, error) {
	conv := ctx.Convention
	msgs := ctx.Messages()

	if !ctx.Git.IsRepository() {
		return nil, wcerrors.NewRepositoryNotFoundError(ctx.Git.WorkingDir())
	}

	raw, err := ctx.Prompter.Prompt(ctx.Context, msgs.TicketID, "", "")
	if err != nil {
		return nil, err
	}
	ticketID, err := utils.ValidateTicketID(conv, raw)
	if err != nil {
		return nil, err
	}
	ctx.Splog.Record("ticket id accepted", "ticket_id", ticketID)

	raw, err = ctx.Prompter.Prompt(ctx.Context, msgs.BranchType, ticketID, "")
	if err != nil {
		return nil, err
	}
	branchType, err := utils.ValidateBranchType(conv, raw)
	if err != nil {
		return nil, err
	}
	ctx.Splog.Record("branch type accepted", "branch_type", branchType)

	raw, err = ctx.Prompter.Prompt(ctx.Context, msgs.Description, ticketID, branchType)
	if err != nil {
		return nil, err
	}
	description, err := utils.ValidateText(utils.FieldDescription, raw)
	if err != nil {
		return nil, err
	}

	name := utils.BranchName(conv, ticketID, branchType, description)
	return &BranchPlan{
		TicketID:    ticketID,
		BranchType:  branchType,
		Description: utils.FormatDescription(description),
		BranchName:  name,
		Command:     git.CheckoutNewBranchCommand(name),
	}, nil
}

// CreateBranchAction runs the branch helper: prepare, show the command, wait for
// confirmation, then create and check out the branch.
// A canceled confirmation returns errors.ErrCanceled and runs nothing.
func CreateBranchAction(ctx *runtime.Context) (*BranchPlan, error) {
	plan, err := PrepareBranch(ctx)
	if err != nil {
		return nil, err
	}

	if err := confirmAndRun(ctx, plan.Command, ctx.Messages().ConfirmBranch); err != nil {
		return plan, err
	}
	return plan, nil
}
