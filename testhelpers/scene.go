// Package testhelpers provides shared test utilities: throwaway workspaces,
// real git repositories with bare remotes, and a recording process executor.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Scene represents a test scene rooted in a temporary directory.
// Scenes never change the process working directory, so tests using them may run in parallel.
type Scene struct {
	t   *testing.T
	Dir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene. The directory is removed by t.Cleanup
// unless DEBUG is set.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir, err := os.MkdirTemp("", "packager-test-*")
	require.NoError(t, err)
	// macOS temp dirs live behind a symlink; tests compare absolute paths.
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(dir)
		}
	})

	scene := &Scene{t: t, Dir: dir}
	if setup != nil {
		require.NoError(t, setup(scene), "scene setup failed")
	}
	return scene
}

// Path joins elements onto the scene directory.
func (s *Scene) Path(elem ...string) string {
	return filepath.Join(append([]string{s.Dir}, elem...)...)
}

// WriteFile writes content to a path relative to the scene, creating parent directories.
func (s *Scene) WriteFile(rel, content string) string {
	s.t.Helper()
	path := s.Path(rel)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(s.t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// WriteFileAt writes a file and sets its modification time.
func (s *Scene) WriteFileAt(rel, content string, modTime time.Time) string {
	s.t.Helper()
	path := s.WriteFile(rel, content)
	require.NoError(s.t, os.Chtimes(path, modTime, modTime))
	return path
}

// Mkdir creates a directory relative to the scene.
func (s *Scene) Mkdir(rel string) string {
	s.t.Helper()
	path := s.Path(rel)
	require.NoError(s.t, os.MkdirAll(path, 0750))
	return path
}

// NewRepoWithRemote creates a repository at rel with one commit on main and a bare
// "origin" remote that main has been pushed to. It returns the repo and the remote path.
func (s *Scene) NewRepoWithRemote(rel string) (*GitRepo, string) {
	s.t.Helper()
	repo, err := NewGitRepo(s.Path(rel))
	require.NoError(s.t, err)
	require.NoError(s.t, repo.CreateChangeAndCommit("initial", "init"))

	remote, err := repo.CreateBareRemote("origin")
	require.NoError(s.t, err)
	require.NoError(s.t, repo.PushBranch("origin", "main"))
	return repo, remote
}

// ReadFile returns the content of a file relative to the scene.
func (s *Scene) ReadFile(rel string) string {
	s.t.Helper()
	data, err := os.ReadFile(s.Path(rel))
	require.NoError(s.t, err)
	return string(data)
}
