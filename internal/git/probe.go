package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ProbeResult is the outcome of a read-only existence check
type ProbeResult int

const (
	// ProbeNotFound indicates the thing looked for is absent
	ProbeNotFound ProbeResult = iota
	// ProbeFound indicates the thing looked for exists
	ProbeFound
	// ProbeError indicates the check itself failed; the answer is unknown
	ProbeError
)

func (p ProbeResult) String() string {
	switch p {
	case ProbeFound:
		return "found"
	case ProbeNotFound:
		return "not-found"
	default:
		return "error"
	}
}

// openRepo opens the repository rooted at dir. A directory without a repository is reported as ProbeNotFound.
func openRepo(dir string) (*gogit.Repository, ProbeResult, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ProbeNotFound, nil
		}
		return nil, ProbeError, err
	}
	return repo, ProbeFound, nil
}

// ProbeRepository checks whether dir is the root of a git working copy
func ProbeRepository(dir string) (ProbeResult, error) {
	_, result, err := openRepo(dir)
	return result, err
}

// ProbeRemote checks whether the repository in dir has a remote with the given name
func ProbeRemote(dir, remote string) (ProbeResult, error) {
	repo, result, err := openRepo(dir)
	if result != ProbeFound {
		return result, err
	}

	if _, err := repo.Remote(remote); err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return ProbeNotFound, nil
		}
		return ProbeError, err
	}
	return ProbeFound, nil
}

// ProbeRemoteBranch checks whether refs/remotes/<remote>/<branch> exists in the repository in dir
func ProbeRemoteBranch(dir, remote, branch string) (ProbeResult, error) {
	repo, result, err := openRepo(dir)
	if result != ProbeFound {
		return result, err
	}

	if _, err := repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return ProbeNotFound, nil
		}
		return ProbeError, err
	}
	return ProbeFound, nil
}

// CurrentBranch returns the branch checked out in dir, or the short commit hash when HEAD is detached.
// An unborn HEAD or a directory without a repository yields ProbeNotFound.
func CurrentBranch(dir string) (string, ProbeResult, error) {
	repo, result, err := openRepo(dir)
	if result != ProbeFound {
		return "", result, err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", ProbeNotFound, nil
		}
		return "", ProbeError, err
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), ProbeFound, nil
	}
	return head.Hash().String()[:7], ProbeFound, nil
}

// DetectRemote picks the remote used for syncing: origin when present, else upstream,
// else origin. Probe errors are returned rather than treated as absence.
func DetectRemote(dir string) (string, error) {
	for _, candidate := range []string{DefaultRemote, "upstream"} {
		result, err := ProbeRemote(dir, candidate)
		switch result {
		case ProbeFound:
			return candidate, nil
		case ProbeError:
			return "", err
		}
	}
	return DefaultRemote, nil
}
