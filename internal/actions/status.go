package actions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fichil/multi-repo-maven-packager/internal/config"
	"github.com/fichil/multi-repo-maven-packager/internal/git"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
	"github.com/fichil/multi-repo-maven-packager/internal/tui"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	Selector string
}

// RepoState is what status found for one repo of a job
type RepoState struct {
	Name         string
	Dir          string
	TargetBranch string
	// Exists is false when the repo would be cloned
	Exists        bool
	IsDir         bool
	IsRepo        bool
	CurrentBranch string
	Probe         git.ProbeResult
	ProbeErr      error
}

// OnTarget reports whether the working copy is on the branch the job wants
func (s RepoState) OnTarget() bool {
	return s.Probe == git.ProbeFound && s.CurrentBranch == s.TargetBranch
}

// InspectJob resolves each repo of nj and inspects its working copy without changing it
func InspectJob(nj config.NamedJob) ([]RepoState, error) {
	vars := nj.Settings.Vars
	states := make([]RepoState, 0, len(nj.Job.Repos))
	for _, repo := range nj.Job.Repos {
		dir, err := filepath.Abs(strings.TrimSpace(vars.Resolve(repo.Path)))
		if err != nil {
			return nil, fmt.Errorf("repo %s: %w", repo.Name, err)
		}
		state := RepoState{
			Name:         repo.Name,
			Dir:          dir,
			TargetBranch: strings.TrimSpace(vars.Resolve(repo.Branch)),
		}

		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("repo %s: %w", repo.Name, err)
		default:
			state.Exists = true
			state.IsDir = info.IsDir()
		}

		if state.IsDir {
			var repoProbe git.ProbeResult
			repoProbe, state.ProbeErr = git.ProbeRepository(dir)
			state.IsRepo = repoProbe == git.ProbeFound
			state.Probe = repoProbe
			if state.IsRepo {
				state.CurrentBranch, state.Probe, state.ProbeErr = git.CurrentBranch(dir)
			}
		}
		states = append(states, state)
	}
	return states, nil
}

// StatusAction prints, for every repo of the selected jobs, whether it exists and which branch it is on
func StatusAction(ctx *runtime.Context, opts StatusOptions) error {
	all, err := ctx.Jobs()
	if err != nil {
		return err
	}
	jobs, err := SelectJobs(opts.Selector, all)
	if err != nil {
		return err
	}

	splog := ctx.Splog
	for _, nj := range jobs {
		states, err := InspectJob(nj)
		if err != nil {
			return err
		}
		splog.Info(tui.ColorHeader(nj.DisplayName))
		for _, s := range states {
			splog.Info("  %s", describeState(s))
		}
	}
	return nil
}

func describeState(s RepoState) string {
	switch {
	case !s.Exists:
		return fmt.Sprintf("%s: %s (%s)", s.Name, tui.ColorYellow("not cloned"), s.Dir)
	case !s.IsDir:
		return fmt.Sprintf("%s: %s (%s)", s.Name, tui.ColorRed("not a directory"), s.Dir)
	case s.Probe == git.ProbeError:
		return fmt.Sprintf("%s: %s: %v", s.Name, tui.ColorRed("cannot read repository"), s.ProbeErr)
	case !s.IsRepo:
		return fmt.Sprintf("%s: %s (%s)", s.Name, tui.ColorRed("not a git repository"), s.Dir)
	case s.Probe == git.ProbeNotFound:
		return fmt.Sprintf("%s: no commits yet, wants %s", s.Name, s.TargetBranch)
	case s.OnTarget():
		return fmt.Sprintf("%s: on %s %s", s.Name, s.CurrentBranch, tui.ColorSuccess("✓"))
	default:
		return fmt.Sprintf("%s: on %s, wants %s", s.Name, s.CurrentBranch, tui.ColorYellow(s.TargetBranch))
	}
}
