package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// targetDirName is the Maven build output directory
const targetDirName = "target"

// FindCandidates returns the .war files found directly inside every directory named
// target below repoDir, skipping original-* and *-sources.war. Target directories are
// not descended into. A missing repoDir yields no candidates.
func FindCandidates(repoDir string) ([]string, error) {
	if _, err := os.Stat(repoDir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var candidates []string
	if err := filepath.WalkDir(repoDir, collectTargets(repoDir, &candidates)); err != nil {
		return nil, err
	}
	return candidates, nil
}

// collectTargets builds the walk callback for FindCandidates. Directories below repoDir
// that cannot be read are skipped; only a failure on repoDir itself ends the walk.
func collectTargets(repoDir string, candidates *[]string) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == repoDir {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == repoDir || d.Name() != targetDirName {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return filepath.SkipDir
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && IsCandidateName(entry.Name()) {
				*candidates = append(*candidates, filepath.Join(path, entry.Name()))
			}
		}
		return filepath.SkipDir
	}
}

// IsCandidateName reports whether a file name looks like a deployable war
func IsCandidateName(name string) bool {
	return strings.HasSuffix(name, ".war") &&
		!strings.HasPrefix(name, "original-") &&
		!strings.HasSuffix(name, "-sources.war")
}
