package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fichil/multi-repo-maven-packager/internal/artifact"
	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/git"
	"github.com/fichil/multi-repo-maven-packager/internal/maven"
	"github.com/fichil/multi-repo-maven-packager/internal/process"
	"github.com/fichil/multi-repo-maven-packager/internal/utils"
)

// Logger is the subset of tui.Splog the pipeline writes to
type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// RepoSynchronizer clones and synchronizes working copies
type RepoSynchronizer interface {
	Clone(ctx context.Context, url, targetDir string, shallow bool) error
	Sync(ctx context.Context, repoDir, branch string) error
}

// Options controls how jobs run
type Options struct {
	DryRun    bool
	SkipTests bool
}

// Deps are the collaborators a Runner drives. Sync and Sink are optional; they
// default to a git.Synchronizer over Executor and a LogSink over Log.
type Deps struct {
	Executor process.Executor
	Sync     RepoSynchronizer
	Sink     PlanSink
	Log      Logger
}

// Runner executes jobs one at a time
type Runner struct {
	exec     process.Executor
	sync     RepoSynchronizer
	sink     PlanSink
	log      Logger
	resolver *artifact.Resolver
	opts     Options
}

// NewRunner creates a Runner. The executor's dry-run mode must match opts.DryRun.
func NewRunner(deps Deps, opts Options) *Runner {
	r := &Runner{
		exec: deps.Executor,
		sync: deps.Sync,
		sink: deps.Sink,
		log:  deps.Log,
		opts: opts,
	}
	if r.sync == nil {
		r.sync = git.NewSynchronizer(deps.Executor, deps.Log)
	}
	if r.sink == nil {
		r.sink = NewLogSink(deps.Log)
	}
	r.resolver = artifact.NewResolver(artifact.NewCopier(opts.DryRun, deps.Log), copyAnnouncer{sink: r.sink}, deps.Log)
	return r
}

// RunJob runs the repo phase and then the artifact phase of nj
func (r *Runner) RunJob(ctx context.Context, nj config.NamedJob) error {
	vars := nj.Settings.Vars
	builder := maven.NewRunner(r.exec, nj.Settings.MavenExecutable)
	repoDirs := make(map[string]string, len(nj.Job.Repos))

	for i, repo := range nj.Job.Repos {
		r.log.Debug("Repo %d/%d: %s", i+1, len(nj.Job.Repos), repo.Name)
		if err := r.runRepo(ctx, nj, repo, vars, builder, repoDirs); err != nil {
			return err
		}
	}

	return r.runArtifacts(nj, vars, repoDirs)
}

func (r *Runner) runRepo(ctx context.Context, nj config.NamedJob, repo config.Repo, vars config.Vars, builder *maven.Runner, repoDirs map[string]string) error {
	path := strings.TrimSpace(vars.Resolve(repo.Path))
	branch := strings.TrimSpace(vars.Resolve(repo.Branch))
	url := strings.TrimSpace(vars.Resolve(repo.GitURL))
	shallow := strings.EqualFold(strings.TrimSpace(vars.Resolve(repo.Shallow)), "true")

	if utils.IsBlank(path) {
		return pkgerrors.NewConfigError(nj.DisplayName, fmt.Sprintf("repo %q: path is empty", repo.Name), nil)
	}
	if utils.IsBlank(branch) {
		return pkgerrors.NewConfigError(nj.DisplayName, fmt.Sprintf("repo %q: branch is empty", repo.Name), nil)
	}

	repoDir, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("repo %s: failed to resolve %s: %w", repo.Name, path, err)
	}

	info, err := os.Stat(repoDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if utils.IsBlank(url) {
			return pkgerrors.NewConfigError(nj.DisplayName,
				fmt.Sprintf("repo %q: %s does not exist and gitUrl is not set", repo.Name, repoDir), nil)
		}
		r.sink.Announce(Action{Kind: KindClone, Repo: repo.Name, URL: url, Dir: repoDir, Shallow: shallow})
		if r.opts.DryRun {
			// Assume the clone succeeds so later steps can still be planned.
			repoDirs[repo.Name] = repoDir
			return nil
		}
		if err := r.sync.Clone(ctx, url, repoDir, shallow); err != nil {
			return fmt.Errorf("repo %s: %w", repo.Name, err)
		}
		if info, err = os.Stat(repoDir); err != nil {
			return fmt.Errorf("repo %s: clone did not create %s: %w", repo.Name, repoDir, err)
		}
	case err != nil:
		return fmt.Errorf("repo %s: %w", repo.Name, err)
	}

	if !info.IsDir() {
		return pkgerrors.NewConfigError(nj.DisplayName,
			fmt.Sprintf("repo %q: %s is not a directory", repo.Name, repoDir), nil)
	}
	repoDirs[repo.Name] = repoDir

	r.sink.Announce(Action{Kind: KindSync, Repo: repo.Name, Dir: repoDir, Branch: branch})
	if err := r.sync.Sync(ctx, repoDir, branch); err != nil {
		return fmt.Errorf("repo %s: %w", repo.Name, err)
	}

	if !repo.HasGoals() {
		return nil
	}

	workDir := buildDir(repoDir, vars.Resolve(repo.Maven.WorkDir))
	r.sink.Announce(Action{
		Kind:    KindBuild,
		Repo:    repo.Name,
		Dir:     workDir,
		Command: builder.CommandLine(repo.Maven.Goals, r.opts.SkipTests),
	})
	r.log.Debug("Building %s with %s in %s", repo.Name, builder.Executable(), workDir)
	if err := builder.Build(ctx, workDir, repo.Maven.Goals, r.opts.SkipTests); err != nil {
		return fmt.Errorf("repo %s: %w", repo.Name, err)
	}
	return nil
}

func (r *Runner) runArtifacts(nj config.NamedJob, vars config.Vars, repoDirs map[string]string) error {
	arts := nj.Job.Artifacts
	if arts == nil || len(arts.Files) == 0 {
		return nil
	}

	outputDir := strings.TrimSpace(vars.Resolve(arts.OutputDir))
	if utils.IsBlank(outputDir) {
		return pkgerrors.NewConfigError(nj.DisplayName, "artifacts.outputDir is empty", nil)
	}
	outAbs, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory %s: %w", outputDir, err)
	}

	for _, f := range arts.Files {
		repoDir, ok := repoDirs[f.Repo]
		if !ok {
			return fmt.Errorf("%w: %q", pkgerrors.ErrRepoNotRegistered, f.Repo)
		}

		from := vars.Resolve(f.From)
		to := filepath.Join(outAbs, vars.Resolve(f.To))
		if err := r.resolver.ResolveAndCopy(repoDir, from, to); err != nil {
			return fmt.Errorf("artifact %s of repo %s: %w", from, f.Repo, err)
		}
	}
	return nil
}

// buildDir resolves the Maven working directory against the repo
func buildDir(repoDir, workDir string) string {
	workDir = strings.TrimSpace(workDir)
	if workDir == "" || workDir == "." {
		return repoDir
	}
	if filepath.IsAbs(workDir) {
		return workDir
	}
	return filepath.Join(repoDir, workDir)
}
