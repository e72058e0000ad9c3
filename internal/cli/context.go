package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/runtime"
	"github.com/fichil/multi-repo-maven-packager/internal/tui"
	"github.com/fichil/multi-repo-maven-packager/internal/utils"
)

// globalOptions are the flags every command shares
type globalOptions struct {
	configPath    string
	logFile       string
	noInteractive bool
}

// interactive reports whether prompts may be shown
func (g *globalOptions) interactive() bool {
	return !g.noInteractive && utils.IsInteractive() && tui.IsTTY()
}

// withContext builds the runtime context for a command: logger, optional log file and
// the root manifest path, which must point at an existing file.
func withContext(cmd *cobra.Command, globals *globalOptions, fn func(ctx *runtime.Context) error) error {
	tui.ConfigureColors()

	splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), tui.LogFilePath(globals.logFile))
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	configPath, err := resolveConfigPath(globals)
	if err != nil {
		return err
	}
	splog.Debug("Using configuration %s", configPath)

	return fn(runtime.NewContextWithConfig(cmd.Context(), splog, configPath))
}

// resolveConfigPath takes --conf, else asks (defaulting to package.yml), else uses package.yml
func resolveConfigPath(globals *globalOptions) (string, error) {
	path := utils.TrimQuotes(globals.configPath)
	if path == "" && globals.interactive() {
		answer, err := tui.PromptInput("Path to package.yml", config.DefaultManifestName)
		if err != nil {
			return "", err
		}
		path = utils.TrimQuotes(answer)
	}
	if path == "" {
		path = config.DefaultManifestName
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", pkgerrors.NewExitError(pkgerrors.ExitConfigRequired,
			pkgerrors.NewConfigError(path, "configuration file not found", err))
	}
	return path, nil
}

// loadJobs loads the catalog, reporting configuration problems with the config exit code
func loadJobs(ctx *runtime.Context) error {
	jobs, err := ctx.Jobs()
	if err != nil {
		return pkgerrors.NewExitError(pkgerrors.ExitConfigRequired, err)
	}
	if len(jobs) == 0 {
		return pkgerrors.NewExitError(pkgerrors.ExitJobNotFound,
			fmt.Errorf("%w in %s", pkgerrors.ErrNoJobs, ctx.ConfigPath))
	}
	return nil
}
