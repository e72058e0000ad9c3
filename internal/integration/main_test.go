// Package integration runs the packager binary against real git repositories
// and a stand-in build tool.
package integration

import (
	"os/exec"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
}
