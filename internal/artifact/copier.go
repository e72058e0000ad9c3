package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

// Logger is the subset of tui.Splog the artifact package writes to
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// Copier writes artifacts to their destination
type Copier struct {
	dryRun bool
	log    Logger
}

// NewCopier creates a Copier. In dry-run mode it only logs what it would copy.
func NewCopier(dryRun bool, log Logger) *Copier {
	return &Copier{dryRun: dryRun, log: log}
}

// IsDryRun reports whether copies are skipped
func (c *Copier) IsDryRun() bool {
	return c.dryRun
}

// Copy copies the regular file from to the path to, creating parent directories and
// overwriting an existing destination. Copying a file onto itself leaves it untouched.
func (c *Copier) Copy(from, to string) error {
	if c.dryRun {
		c.log.Info("[DRY-RUN] skip copy: %s -> %s", from, to)
		return nil
	}

	info, err := os.Stat(from)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", pkgerrors.ErrNoArtifact, from)
	}

	if dst, err := os.Stat(to); err == nil && os.SameFile(info, dst) {
		c.log.Info("Artifact already in place: %s", to)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(to), 0750); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", to, err)
	}

	src, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("failed to open artifact %s: %w", from, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", to, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", from, to, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", to, err)
	}
	return nil
}
