package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryOnce sync.Once
	binaryPath string
	binaryErr  error
)

// PackagerBinary builds ./cmd/packager once per test process and returns its path.
// The binary lives in a temp directory that is left for the OS to clean up.
func PackagerBinary(t *testing.T) string {
	t.Helper()
	binaryOnce.Do(func() {
		binaryPath, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		t.Fatalf("failed to build packager binary: %v", binaryErr)
	}
	return binaryPath
}

func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "packager-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	path := filepath.Join(tmpDir, "packager")

	cmd := exec.Command("go", "build", "-o", path, "./cmd/packager")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}
	return path, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
