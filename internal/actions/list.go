package actions

import (
	"fmt"

	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
)

// ListAction prints every job as "<n>) <display name>"
func ListAction(ctx *runtime.Context) error {
	jobs, err := ctx.Jobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return pkgerrors.ErrNoJobs
	}

	ctx.Splog.Info("Available jobs:")
	for _, line := range JobLines(jobs) {
		ctx.Splog.Info("  %s", line)
	}
	return nil
}

// JobLines renders the numbered job catalog
func JobLines(jobs []config.NamedJob) []string {
	lines := make([]string, len(jobs))
	for i, nj := range jobs {
		lines[i] = fmt.Sprintf("%d) %s", i+1, nj.DisplayName)
	}
	return lines
}
