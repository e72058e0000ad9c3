package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

// Announcer is told about every copy before it happens. auto marks copies whose
// source came from the fallback scan.
type Announcer interface {
	AnnounceCopy(from, to string, auto bool)
}

// Resolver turns a declared artifact into one or more copies
type Resolver struct {
	copier    *Copier
	announcer Announcer
	log       Logger
}

// NewResolver creates a Resolver
func NewResolver(copier *Copier, announcer Announcer, log Logger) *Resolver {
	return &Resolver{copier: copier, announcer: announcer, log: log}
}

// ResolveAndCopy copies repoDir/fromRel to toAbs. When that file does not exist, the
// repository is scanned for candidates: a destination ending in .war receives the best
// one, any other destination is treated as a directory receiving all of them.
func (r *Resolver) ResolveAndCopy(repoDir, fromRel, toAbs string) error {
	from := filepath.Join(repoDir, fromRel)
	if isRegularFile(from) {
		return r.copy(from, toAbs, false)
	}

	r.log.Warn("Artifact not found by config: %s", from)
	r.log.Info("Falling back to auto-discovered war files under %s", repoDir)

	candidates, err := FindCandidates(repoDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s for artifacts: %w", repoDir, err)
	}

	if len(candidates) == 0 {
		if r.copier.IsDryRun() {
			// Nothing has been built yet; report the declared copy so the plan stays complete.
			r.log.Warn("No war found under %s yet, it is expected after the build", repoDir)
			if isWarPath(toAbs) {
				return r.copy(from, toAbs, false)
			}
			return r.copy(from, filepath.Join(toAbs, filepath.Base(from)), false)
		}
		return fmt.Errorf("%w under %s (from=%s)", pkgerrors.ErrNoArtifact, repoDir, fromRel)
	}

	if isWarPath(toAbs) {
		best, err := ChooseBest(candidates)
		if err != nil {
			return err
		}
		return r.copy(best, toAbs, true)
	}

	for _, candidate := range candidates {
		if err := r.copy(candidate, filepath.Join(toAbs, filepath.Base(candidate)), true); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) copy(from, to string, auto bool) error {
	if r.announcer != nil {
		r.announcer.AnnounceCopy(from, to, auto)
	}
	return r.copier.Copy(from, to)
}

// isWarPath reports whether a destination names a single war file rather than a directory
func isWarPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".war")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
