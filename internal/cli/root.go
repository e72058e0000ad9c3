// Package cli wires the packager commands to cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fichil/multi-repo-maven-packager/internal/actions"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
)

// NewRootCmd creates the root cobra command. Without a subcommand it runs jobs.
func NewRootCmd(version, commit, date string) *cobra.Command {
	globals := &globalOptions{}
	run := &runOptions{}
	var listJobs bool

	rootCmd := &cobra.Command{
		Use:   "packager",
		Short: "Sync, build and package several Maven repositories in one go",
		Long: `packager reads a YAML job catalog (package.yml plus the job sets it includes),
brings every repository of the selected jobs to its release branch, runs the
configured Maven goals and copies the resulting artifacts to an output directory.

Jobs are selected by number or name; several can be given at once, separated by
"\" or ",", and run strictly in that order. With --dry-run every clone, checkout,
build and copy is printed but nothing is changed.`,
		Example: `  packager -c package.yml --list-jobs
  packager -c package.yml -j "1\3" --skip-tests
  packager -j apps:web --dry-run`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContext(cmd, globals, func(ctx *runtime.Context) error {
				if listJobs {
					return listExit(actions.ListAction(ctx))
				}
				return runJobs(cmd, ctx, globals, run)
			})
		},
	}
	rootCmd.SetVersionTemplate(versionLine(version, commit, date) + "\n")

	rootCmd.PersistentFlags().StringVarP(&globals.configPath, "conf", "c", "", "Path to the root manifest (default: prompt, then ./package.yml)")
	rootCmd.PersistentFlags().StringVar(&globals.logFile, "log-file", "", "Also write a rotating log to this file (env PACKAGER_LOG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&globals.noInteractive, "no-interactive", false, "Never prompt; use defaults for anything not given as a flag")

	addRunFlags(rootCmd, run)
	rootCmd.Flags().BoolVar(&listJobs, "list-jobs", false, "List the available jobs and exit")

	rootCmd.AddCommand(newRunCmd(globals))
	rootCmd.AddCommand(newListCmd(globals))
	rootCmd.AddCommand(newStatusCmd(globals))
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
