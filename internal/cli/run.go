package cli

import (
	"github.com/spf13/cobra"

	"github.com/fichil/multi-repo-maven-packager/internal/actions"
	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
	"github.com/fichil/multi-repo-maven-packager/internal/tui"
)

// runOptions are the flags controlling a batch
type runOptions struct {
	job       string
	skipTests bool
	dryRun    bool
}

func addRunFlags(cmd *cobra.Command, run *runOptions) {
	cmd.Flags().StringVarP(&run.job, "job", "j", "", `Jobs to run by number or name, e.g. "1\3" or "apps:web,core"`)
	cmd.Flags().BoolVar(&run.skipTests, "skip-tests", false, "Pass -DskipTests to Maven")
	cmd.Flags().BoolVar(&run.dryRun, "dry-run", false, "Print every step without cloning, syncing, building or copying")
}

// newRunCmd creates the run command
func newRunCmd(globals *globalOptions) *cobra.Command {
	run := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one or more jobs",
		Long: `Run one or more jobs in the order given. Each job synchronizes its repositories,
runs their Maven goals and copies the declared artifacts. The batch stops at the
first failure.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContext(cmd, globals, func(ctx *runtime.Context) error {
				return runJobs(cmd, ctx, globals, run)
			})
		},
	}
	addRunFlags(cmd, run)

	return cmd
}

// runJobs selects jobs (flag or picker), settles skip-tests and dry-run (flag, prompt or
// default false) and runs the batch
func runJobs(cmd *cobra.Command, ctx *runtime.Context, globals *globalOptions, run *runOptions) error {
	if err := loadJobs(ctx); err != nil {
		return err
	}
	all, _ := ctx.Jobs()
	interactive := globals.interactive()

	jobs, err := selectJobs(ctx, all, run.job, interactive)
	if err != nil {
		return selectionExit(err)
	}

	skipTests, err := boolOption(cmd, "skip-tests", run.skipTests, interactive, "Skip tests?")
	if err != nil {
		return err
	}
	dryRun, err := boolOption(cmd, "dry-run", run.dryRun, interactive, "Dry run (print the plan only)?")
	if err != nil {
		return err
	}

	return actions.RunAction(ctx, actions.RunOptions{
		Jobs:      jobs,
		DryRun:    dryRun,
		SkipTests: skipTests,
	})
}

func selectJobs(ctx *runtime.Context, all []config.NamedJob, selector string, interactive bool) ([]config.NamedJob, error) {
	if selector != "" || !interactive {
		return actions.SelectJobs(selector, all)
	}

	ctx.Splog.SetQuiet(true)
	picked, err := tui.PromptPick("Select jobs to run (space toggles, order is run order)", actions.JobLines(all))
	ctx.Splog.SetQuiet(false)
	if err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, pkgerrors.ErrNothingSelected
	}

	jobs := make([]config.NamedJob, len(picked))
	for i, idx := range picked {
		jobs[i] = all[idx]
	}
	return jobs, nil
}

// boolOption returns the flag when it was given, else asks with a yes default, else false
func boolOption(cmd *cobra.Command, flag string, value, interactive bool, question string) (bool, error) {
	if cmd.Flags().Changed(flag) || !interactive {
		return value, nil
	}
	return tui.PromptConfirm(question, true)
}
