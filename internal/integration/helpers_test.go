package integration

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fichil/multi-repo-maven-packager/testhelpers"
)

// fakeMaven records its arguments into target/app.war, standing in for a real build
const fakeMaven = `#!/bin/sh
mkdir -p target
echo "built with: $*" > target/app.war
echo "original" > target/original-app.war
`

// TestShell wraps a test scene and provides a fluent interface for running
// the packager binary. Tests using this read like a series of terminal commands.
type TestShell struct {
	t          *testing.T
	scene      *testhelpers.Scene
	binaryPath string
	lastOutput string
	lastCode   int
}

// NewTestShell creates a workspace with a fake Maven executable at bin/mvn
func NewTestShell(t *testing.T) *TestShell {
	t.Helper()
	scene := testhelpers.NewScene(t, nil)
	mvn := scene.WriteFile("bin/mvn", fakeMaven)
	//nolint:gosec // the stand-in build tool must be executable
	require.NoError(t, os.Chmod(mvn, 0755))
	return &TestShell{t: t, scene: scene, binaryPath: testhelpers.PackagerBinary(t)}
}

// Scene returns the underlying test scene for direct access when needed.
func (s *TestShell) Scene() *testhelpers.Scene {
	return s.scene
}

// Write creates a file in the workspace.
func (s *TestShell) Write(rel, content string) *TestShell {
	s.t.Helper()
	s.scene.WriteFile(rel, content)
	return s
}

// Run executes packager with the given arguments and expects success.
func (s *TestShell) Run(args ...string) *TestShell {
	s.t.Helper()
	s.exec(args...)
	require.Equal(s.t, 0, s.lastCode, "packager %s failed:\n%s", strings.Join(args, " "), s.lastOutput)
	return s
}

// RunExpectCode executes packager and expects the given exit code.
func (s *TestShell) RunExpectCode(code int, args ...string) *TestShell {
	s.t.Helper()
	s.exec(args...)
	require.Equal(s.t, code, s.lastCode, "unexpected exit code for packager %s:\n%s", strings.Join(args, " "), s.lastOutput)
	return s
}

// OutputContains asserts the last command's output contains text.
func (s *TestShell) OutputContains(text string) *TestShell {
	s.t.Helper()
	require.Contains(s.t, s.lastOutput, text)
	return s
}

// OutputNotContains asserts the last command's output does not contain text.
func (s *TestShell) OutputNotContains(text string) *TestShell {
	s.t.Helper()
	require.NotContains(s.t, s.lastOutput, text)
	return s
}

// FileEquals asserts a workspace file's content.
func (s *TestShell) FileEquals(rel, content string) *TestShell {
	s.t.Helper()
	require.Equal(s.t, content, s.scene.ReadFile(rel))
	return s
}

func (s *TestShell) exec(args ...string) {
	s.t.Helper()
	cmd := exec.Command(s.binaryPath, append(args, "--no-interactive")...)
	cmd.Dir = s.scene.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	s.lastOutput = string(out)
	s.lastCode = 0
	if err != nil {
		var exitErr *exec.ExitError
		require.True(s.t, errors.As(err, &exitErr), "failed to start packager: %v", err)
		s.lastCode = exitErr.ExitCode()
	}
}
