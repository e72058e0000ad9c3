package cli

import (
	"github.com/spf13/cobra"

	"github.com/fichil/multi-repo-maven-packager/internal/actions"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
)

// newListCmd creates the list command
func newListCmd(globals *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Aliases:      []string{"ls"},
		Short:        "List the jobs defined by the configuration",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContext(cmd, globals, func(ctx *runtime.Context) error {
				return listExit(actions.ListAction(ctx))
			})
		},
	}
}
