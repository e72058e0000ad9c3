// Package process runs external commands (git, mvn) on behalf of the pipeline.
//
// It is the only place where subprocesses are spawned. In dry-run mode a
// command is announced instead of executed and always reports success.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

// maxStderrTail is how much trailing stderr a CommandError keeps
const maxStderrTail = 4096

// Logger is the subset of tui.Splog the runner writes to
type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Executor runs a command in a working directory and blocks until it exits
type Executor interface {
	Run(ctx context.Context, dir string, command string, args ...string) error
	IsDryRun() bool
}

// CommandLine joins a command and its arguments the way they are announced and reported
func CommandLine(command string, args ...string) string {
	return strings.Join(append([]string{command}, args...), " ")
}

// CommandRunner handles execution of external commands
type CommandRunner struct {
	dryRun bool
	log    Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures a CommandRunner
type Option func(*CommandRunner)

// WithDryRun makes the runner announce commands without executing them
func WithDryRun(dryRun bool) Option {
	return func(r *CommandRunner) {
		r.dryRun = dryRun
	}
}

// WithOutput redirects the child's stdout and stderr
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *CommandRunner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewCommandRunner creates a new CommandRunner. Child output goes to the
// parent's stdout and stderr unless WithOutput says otherwise.
func NewCommandRunner(log Logger, opts ...Option) *CommandRunner {
	r := &CommandRunner{
		log:    log,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsDryRun reports whether commands are only announced
func (r *CommandRunner) IsDryRun() bool {
	return r.dryRun
}

// Run executes command with args in dir. A non-zero exit yields a *errors.CommandError.
func (r *CommandRunner) Run(ctx context.Context, dir string, command string, args ...string) error {
	cmdLine := CommandLine(command, args...)
	shownDir := dir
	if shownDir == "" {
		shownDir = "."
	}

	if r.dryRun {
		r.log.Info("[DRY-RUN] %s (dir=%s)", cmdLine, shownDir)
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	r.log.Debug("Exec: %s (dir=%s)", cmdLine, shownDir)

	cmd := exec.CommandContext(ctx, command, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stderrTail bytes.Buffer
	cmd.Stdout = r.stdout
	cmd.Stderr = io.MultiWriter(r.stderr, &stderrTail)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return pkgerrors.NewCommandError(command, args, dir, exitCode, tail(stderrTail.String()), err)
	}
	return nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxStderrTail {
		return s
	}
	return s[len(s)-maxStderrTail:]
}
