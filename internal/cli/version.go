package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionLine(version, commit, date string) string {
	return fmt.Sprintf("packager %s (commit %s, built %s)", version, commit, date)
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionLine(version, commit, date))
		},
	}
}
