package cli

import (
	"github.com/spf13/cobra"

	"webchan.dev/wcgit/internal/actions"
	"webchan.dev/wcgit/internal/runtime"
)

// NewBranchCmd creates the branch helper command
func NewBranchCmd(version string) *cobra.Command {
	return newBranchCmd(version, runtime.NewContext)
}

func newBranchCmd(version string, newContext ContextFactory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "wc-branch",
		Short: "Create a branch named after a WEBCHAN ticket",
		Long: `Create and check out a branch named <type>/WEBCHAN-<id>-<description>.

Asks for the ticket id, the branch type and a short description, shows the
git command it is about to run and waits for Enter before running it.
Press Ctrl+C at any prompt to stop without touching the repository.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, newContext, debug, func(ctx *runtime.Context) error {
				plan, err := actions.CreateBranchAction(ctx)
				if err != nil {
					return err
				}
				ctx.Splog.Debug("checked out %s", plan.BranchName)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Print debug output to the console")

	return cmd
}
