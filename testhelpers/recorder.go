package testhelpers

import (
	"context"
	"strings"
)

// Call is one command seen by a RecordingRunner
type Call struct {
	Dir     string
	Command string
	Args    []string
}

// String renders the call as "<command> <args...> (dir=<dir>)"
func (c Call) String() string {
	return strings.Join(append([]string{c.Command}, c.Args...), " ") + " (dir=" + c.Dir + ")"
}

// Line renders the call without its directory
func (c Call) Line() string {
	return strings.Join(append([]string{c.Command}, c.Args...), " ")
}

// RecordingRunner is a process.Executor that records every call instead of spawning anything.
// OnRun, when set, decides the outcome of each call and may simulate side effects.
type RecordingRunner struct {
	DryRun bool
	Calls  []Call
	OnRun  func(Call) error
}

// Run records the call
func (r *RecordingRunner) Run(_ context.Context, dir string, command string, args ...string) error {
	call := Call{Dir: dir, Command: command, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, call)
	if r.OnRun != nil && !r.DryRun {
		return r.OnRun(call)
	}
	return nil
}

// IsDryRun reports the configured mode
func (r *RecordingRunner) IsDryRun() bool {
	return r.DryRun
}

// Lines returns every recorded call rendered without its directory
func (r *RecordingRunner) Lines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.Line()
	}
	return lines
}

// CallsTo returns the recorded calls whose first argument is sub (e.g. "clone")
func (r *RecordingRunner) CallsTo(command, sub string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Command == command && len(c.Args) > 0 && c.Args[0] == sub {
			out = append(out, c)
		}
	}
	return out
}

// NopLogger discards everything
type NopLogger struct{}

// Info discards the message
func (NopLogger) Info(string, ...interface{}) {}

// Debug discards the message
func (NopLogger) Debug(string, ...interface{}) {}

// Warn discards the message
func (NopLogger) Warn(string, ...interface{}) {}
