package actions

import (
	"fmt"

	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/pipeline"
	"github.com/fichil/multi-repo-maven-packager/internal/process"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
	"github.com/fichil/multi-repo-maven-packager/internal/tui"
)

// RunOptions contains options for running a batch of jobs
type RunOptions struct {
	Jobs      []config.NamedJob
	DryRun    bool
	SkipTests bool
	// Executor replaces the subprocess runner; its dry-run mode must match DryRun
	Executor process.Executor
	// Sink receives every planned action in addition to the log
	Sink pipeline.PlanSink
}

// RunAction runs the jobs strictly in the given order and stops at the first failure
func RunAction(ctx *runtime.Context, opts RunOptions) error {
	splog := ctx.Splog
	if len(opts.Jobs) == 0 {
		return pkgerrors.ErrNothingSelected
	}

	exec := opts.Executor
	if exec == nil {
		exec = process.NewCommandRunner(splog, process.WithDryRun(opts.DryRun))
	}

	planned := &pipeline.Recorder{}
	sink := pipeline.Tee{pipeline.NewLogSink(splog), planned}
	if opts.Sink != nil {
		sink = append(sink, opts.Sink)
	}

	runner := pipeline.NewRunner(pipeline.Deps{
		Executor: exec,
		Sink:     sink,
		Log:      splog,
	}, pipeline.Options{DryRun: opts.DryRun, SkipTests: opts.SkipTests})

	if opts.DryRun {
		splog.Info(tui.ColorYellow("Dry run: commands are printed, nothing is cloned, built or copied."))
	}

	total := len(opts.Jobs)
	for i, nj := range opts.Jobs {
		planned.Actions = nil
		splog.Newline()
		splog.Info(tui.ColorHeader(fmt.Sprintf("[%d/%d] RUN: %s", i+1, total, nj.DisplayName)))

		if err := runner.RunJob(ctx.Context, nj); err != nil {
			return fmt.Errorf("job %s failed: %w", nj.DisplayName, err)
		}

		done := "DONE: " + nj.DisplayName
		if opts.DryRun {
			done += " (DRY-RUN)"
		}
		splog.Info(tui.ColorSuccess(done))
		splog.Debug("%s: %s", nj.DisplayName, planned.Summary())
	}

	return nil
}
