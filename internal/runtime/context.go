package runtime

import (
	"context"

	"github.com/fichil/multi-repo-maven-packager/internal/config"
	"github.com/fichil/multi-repo-maven-packager/internal/tui"
)

// Context provides access to the logger and job catalog for commands
type Context struct {
	Context    context.Context
	Splog      *tui.Splog
	ConfigPath string

	jobs   []config.NamedJob
	loaded bool
}

// NewContextWithConfig creates a context for the given logger and root manifest
func NewContextWithConfig(ctx context.Context, splog *tui.Splog, configPath string) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context:    ctx,
		Splog:      splog,
		ConfigPath: configPath,
	}
}

// Jobs loads the job catalog from ConfigPath once and returns it
func (c *Context) Jobs() ([]config.NamedJob, error) {
	if c.loaded {
		return c.jobs, nil
	}
	jobs, err := config.LoadJobs(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	c.jobs = jobs
	c.loaded = true
	return jobs, nil
}
