package pipeline

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a planned action
type Kind string

// Action kinds
const (
	KindClone Kind = "clone"
	KindSync  Kind = "sync"
	KindBuild Kind = "build"
	KindCopy  Kind = "copy"
)

// Action describes one step the pipeline is about to perform
type Action struct {
	Kind Kind
	// Repo is the configured repo name (clone, sync, build)
	Repo string
	// Dir is the clone target or the build working directory
	Dir     string
	URL     string
	Shallow bool
	Branch  string
	// Command is the rendered build invocation
	Command string
	From    string
	To      string
	// Auto marks copies whose source came from the fallback scan
	Auto bool
}

// String renders the action the way it is announced
func (a Action) String() string {
	switch a.Kind {
	case KindClone:
		depth := ""
		if a.Shallow {
			depth = "--depth 1 "
		}
		return fmt.Sprintf("git clone %s%s -> %s", depth, a.URL, a.Dir)
	case KindSync:
		return fmt.Sprintf("git checkout/pull %s (%s)", a.Branch, a.Repo)
	case KindBuild:
		return fmt.Sprintf("%s (dir=%s)", a.Command, a.Dir)
	case KindCopy:
		verb := "copy"
		if a.Auto {
			verb = "copy(auto)"
		}
		return fmt.Sprintf("%s %s -> %s", verb, a.From, a.To)
	default:
		return string(a.Kind)
	}
}

// PlanSink receives every action before it is executed
type PlanSink interface {
	Announce(Action)
}

// LogSink prints actions as "[PLAN] ..." lines
type LogSink struct {
	log Logger
}

// NewLogSink creates a sink that writes to log
func NewLogSink(log Logger) *LogSink {
	return &LogSink{log: log}
}

// Announce prints the action
func (s *LogSink) Announce(a Action) {
	s.log.Info("[PLAN] %s", a)
}

// Recorder keeps every announced action in order
type Recorder struct {
	Actions []Action
}

// Announce records the action
func (r *Recorder) Announce(a Action) {
	r.Actions = append(r.Actions, a)
}

// Lines returns the recorded actions rendered as strings
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		lines[i] = a.String()
	}
	return lines
}

// Count returns how many actions of kind were recorded
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Summary renders counts per kind, e.g. "1 clone, 2 sync, 1 build, 1 copy"
func (r *Recorder) Summary() string {
	parts := make([]string, 0, 4)
	for _, kind := range []Kind{KindClone, KindSync, KindBuild, KindCopy} {
		if n := r.Count(kind); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}

// Tee fans an announcement out to several sinks
type Tee []PlanSink

// Announce forwards the action to every sink
func (t Tee) Announce(a Action) {
	for _, s := range t {
		s.Announce(a)
	}
}

// copyAnnouncer adapts a PlanSink to artifact.Announcer
type copyAnnouncer struct {
	sink PlanSink
}

func (c copyAnnouncer) AnnounceCopy(from, to string, auto bool) {
	c.sink.Announce(Action{Kind: KindCopy, From: from, To: to, Auto: auto})
}
