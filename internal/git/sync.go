package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/process"
)

// DefaultRemote is the remote name assumed when none can be detected
const DefaultRemote = "origin"

// Synchronizer brings working copies to a branch by driving the git executable
type Synchronizer struct {
	exec process.Executor
	log  process.Logger
}

// NewSynchronizer creates a new Synchronizer
func NewSynchronizer(exec process.Executor, log process.Logger) *Synchronizer {
	return &Synchronizer{exec: exec, log: log}
}

// CloneArgs returns the git arguments used to clone url into targetDir
func CloneArgs(url, targetDir string, shallow bool) []string {
	args := []string{"clone"}
	if shallow {
		args = append(args, "--depth", "1")
	}
	return append(args, url, targetDir)
}

// Clone clones url into targetDir, running from targetDir's parent. The parent is
// created first unless the executor is in dry-run mode.
func (s *Synchronizer) Clone(ctx context.Context, url, targetDir string, shallow bool) error {
	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("failed to resolve clone target %s: %w", targetDir, err)
	}
	parent := filepath.Dir(absTarget)

	if !s.exec.IsDryRun() {
		if err := os.MkdirAll(parent, 0750); err != nil {
			return fmt.Errorf("failed to create clone parent %s: %w", parent, err)
		}
	}

	return s.run(ctx, parent, CloneArgs(url, absTarget, shallow)...)
}

// Sync fetches every branch of the repository's remote, switches to branch (creating it
// from the remote-tracking branch when there is no local one) and fast-forwards it.
// A pull that cannot fast-forward is returned as an error; nothing is merged or rebased.
func (s *Synchronizer) Sync(ctx context.Context, repoDir, branch string) error {
	remote, err := DetectRemote(repoDir)
	if err != nil {
		return fmt.Errorf("failed to inspect remotes of %s: %w", repoDir, err)
	}

	// Single-branch clones only track one ref; widen the refspec so fetch sees every branch.
	fetchKey := "remote." + remote + ".fetch"
	if err := s.run(ctx, repoDir, "config", "--unset-all", fetchKey); err != nil {
		if !errors.Is(err, pkgerrors.ErrCommandFailed) {
			return err
		}
		s.log.Debug("no existing %s to unset in %s", fetchKey, repoDir)
	}
	refspec := fmt.Sprintf("+refs/heads/*:refs/remotes/%s/*", remote)
	if err := s.run(ctx, repoDir, "config", "--add", fetchKey, refspec); err != nil {
		return err
	}

	if err := s.run(ctx, repoDir, "fetch", "--prune", remote); err != nil {
		return err
	}

	if err := s.checkout(ctx, repoDir, remote, branch); err != nil {
		return err
	}

	return s.run(ctx, repoDir, "pull", "--ff-only", remote, branch)
}

// checkout switches to the local branch, falling back to creating it from <remote>/<branch>
func (s *Synchronizer) checkout(ctx context.Context, repoDir, remote, branch string) error {
	checkoutErr := s.run(ctx, repoDir, "checkout", branch)
	if checkoutErr == nil {
		return nil
	}

	result, probeErr := ProbeRemoteBranch(repoDir, remote, branch)
	switch result {
	case ProbeNotFound:
		return fmt.Errorf("%w: %v", pkgerrors.NewBranchNotFoundError(branch, remote), checkoutErr)
	case ProbeError:
		s.log.Debug("could not inspect %s/%s in %s: %v", remote, branch, repoDir, probeErr)
	}

	return s.run(ctx, repoDir, "checkout", "-B", branch, remote+"/"+branch)
}

func (s *Synchronizer) run(ctx context.Context, dir string, args ...string) error {
	return s.exec.Run(ctx, dir, "git", args...)
}
