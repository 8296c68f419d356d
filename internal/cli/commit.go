package cli

import (
	"github.com/spf13/cobra"

	"webchan.dev/wcgit/internal/actions"
	"webchan.dev/wcgit/internal/runtime"
)

// NewCommitCmd creates the commit helper command
func NewCommitCmd(version string) *cobra.Command {
	return newCommitCmd(version, runtime.NewContext)
}

func newCommitCmd(version string, newContext ContextFactory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "wc-commit",
		Short: "Commit staged changes with a WEBCHAN ticket message",
		Long: `Commit staged changes with the message <type>(WEBCHAN-<id>): <message>.

The ticket id is read from the current branch name, which must contain
/WEBCHAN-<id>. Asks for the commit type and message, shows the git command
it is about to run and waits for Enter before running it.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, newContext, debug, func(ctx *runtime.Context) error {
				plan, err := actions.CreateCommitAction(ctx)
				if err != nil {
					return err
				}
				ctx.Splog.Debug("committed on %s", plan.Branch)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Print debug output to the console")

	return cmd
}
