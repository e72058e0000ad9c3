// Package maven invokes the build tool for a repository.
package maven

import (
	"context"
	"strings"

	"github.com/fichil/multi-repo-maven-packager/internal/process"
)

// DefaultExecutable is used when the configuration leaves the executable blank
const DefaultExecutable = "mvn"

// SkipTestsFlag is appended to the goals when tests are skipped
const SkipTestsFlag = "-DskipTests"

// Runner runs Maven goals through a process.Executor
type Runner struct {
	exec       process.Executor
	executable string
}

// NewRunner creates a Runner for the given executable, falling back to mvn when it is blank
func NewRunner(exec process.Executor, executable string) *Runner {
	executable = strings.TrimSpace(executable)
	if executable == "" {
		executable = DefaultExecutable
	}
	return &Runner{exec: exec, executable: executable}
}

// Executable returns the build tool the runner invokes
func (r *Runner) Executable() string {
	return r.executable
}

// Args returns the arguments passed to the executable
func Args(goals []string, skipTests bool) []string {
	args := append([]string(nil), goals...)
	if skipTests {
		args = append(args, SkipTestsFlag)
	}
	return args
}

// CommandLine renders the invocation Build would perform
func (r *Runner) CommandLine(goals []string, skipTests bool) string {
	return process.CommandLine(r.executable, Args(goals, skipTests)...)
}

// Build runs the goals in workDir. An empty goal list does nothing.
func (r *Runner) Build(ctx context.Context, workDir string, goals []string, skipTests bool) error {
	if len(goals) == 0 {
		return nil
	}
	return r.exec.Run(ctx, workDir, r.executable, Args(goals, skipTests)...)
}
