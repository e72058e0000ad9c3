package cli

import (
	"github.com/spf13/cobra"

	"github.com/fichil/multi-repo-maven-packager/internal/actions"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <job>",
		Short: "Show where each repository of a job stands",
		Long: `Show, for every repository of the given jobs, whether it has been cloned and
which branch is checked out compared to the branch the job wants. Nothing is
fetched or changed.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContext(cmd, globals, func(ctx *runtime.Context) error {
				if err := loadJobs(ctx); err != nil {
					return err
				}
				return selectionExit(actions.StatusAction(ctx, actions.StatusOptions{Selector: args[0]}))
			})
		},
	}
}
