// Package errors provides sentinel errors and custom error types for the packager application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrConfig indicates a missing, blank or malformed configuration value
	ErrConfig = errors.New("invalid configuration")

	// ErrNoIncludes indicates that the root manifest declares no includes
	ErrNoIncludes = errors.New("root manifest must define includes")

	// ErrJobNotFound indicates that a job selector matched nothing
	ErrJobNotFound = errors.New("job not found")

	// ErrNoJobs indicates that the configuration yielded an empty job catalog
	ErrNoJobs = errors.New("no jobs found")

	// ErrNothingSelected indicates that the operator selected no job
	ErrNothingSelected = errors.New("no job selected")

	// ErrAmbiguousJob indicates that a bare job name matched more than one job
	ErrAmbiguousJob = errors.New("job name is ambiguous")

	// ErrRepoNotRegistered indicates that an artifact references a repo the job never registered
	ErrRepoNotRegistered = errors.New("artifact repo not found in job repos")

	// ErrNoArtifact indicates that neither the declared file nor a fallback candidate exists
	ErrNoArtifact = errors.New("no artifact found")

	// ErrBranchNotFound indicates that a branch does not exist locally or on the remote
	ErrBranchNotFound = errors.New("branch not found")

	// ErrCommandFailed indicates that an external command exited unsuccessfully
	ErrCommandFailed = errors.New("command failed")
)

// ConfigError represents a configuration problem tied to a file or a field
type ConfigError struct {
	Source  string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s", e.Source, e.Message)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(source, message string, err error) *ConfigError {
	return &ConfigError{
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// JobNotFoundError represents a selector token that matched no job
type JobNotFoundError struct {
	Selector string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job %q not found", e.Selector)
}

// Is returns true if the target error is ErrJobNotFound
func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(selector string) *JobNotFoundError {
	return &JobNotFoundError{Selector: selector}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
	Remote     string
}

func (e *BranchNotFoundError) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("branch %s does not exist locally or on %s", e.BranchName, e.Remote)
	}
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName, remote string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName, Remote: remote}
}

// CommandError represents an external command that failed to start or exited non-zero.
// ExitCode is -1 when the process never produced an exit status.
type CommandError struct {
	Command  string
	Args     []string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

// CommandLine returns the command and its arguments joined by spaces
func (e *CommandError) CommandLine() string {
	return strings.Join(append([]string{e.Command}, e.Args...), " ")
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.CommandLine())
	if e.Dir != "" {
		msg += fmt.Sprintf(" (dir=%s)", e.Dir)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil && e.ExitCode < 0 {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, dir string, exitCode int, stderr string, err error) *CommandError {
	return &CommandError{
		Command:  command,
		Args:     args,
		Dir:      dir,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// Exit codes reported by the packager binary
const (
	ExitFailure        = 1
	ExitConfigRequired = 2
	ExitJobRequired    = 2
	ExitJobNotFound    = 3
)

// ExitError carries a process exit code alongside the underlying error
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCode returns the exit code that should be reported for err
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
