package config

import (
	"path/filepath"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/utils"
)

// DefaultManifestName is the root manifest looked up in the working directory
const DefaultManifestName = "package.yml"

// Settings is the layered configuration a job set hands to each of its jobs.
// It is built once by LoadJobs and passed by value; nothing mutates it afterwards.
type Settings struct {
	MavenExecutable string
	Vars            Vars
}

// NamedJob is one entry of the flattened job catalog
type NamedJob struct {
	DisplayName string
	JobName     string
	IncludeName string
	Settings    Settings
	Job         Job
}

// DisplayName returns the operator-facing name of a job drawn from an include
func DisplayName(includeName, jobName string) string {
	if utils.IsBlank(includeName) {
		return jobName
	}
	return includeName + ":" + jobName
}

// LoadJobs parses the root manifest, merges each include with the global defaults and
// flattens every job into a single list ordered by include, then by job declaration.
func LoadJobs(rootManifestPath string) ([]NamedJob, error) {
	root, err := LoadRoot(rootManifestPath)
	if err != nil {
		return nil, err
	}
	if len(root.Includes) == 0 {
		return nil, pkgerrors.NewConfigError(rootManifestPath, "no includes declared", pkgerrors.ErrNoIncludes)
	}

	baseDir := filepath.Dir(rootManifestPath)
	globalVars := root.Vars.Overlay(nil)
	globalMaven := ""
	if root.Maven != nil {
		globalMaven = root.Maven.Executable
	}

	var out []NamedJob
	for _, inc := range root.Includes {
		if utils.IsBlank(inc.Path) {
			continue
		}

		set, err := LoadJobSet(includePath(baseDir, inc.Path))
		if err != nil {
			return nil, err
		}
		if set.Jobs.Len() == 0 {
			continue
		}

		settings := mergeSettings(globalMaven, globalVars, set)
		for _, name := range set.Jobs.Names() {
			job, _ := set.Jobs.Get(name)
			out = append(out, NamedJob{
				DisplayName: DisplayName(inc.Name, name),
				JobName:     name,
				IncludeName: inc.Name,
				Settings:    settings,
				Job:         job,
			})
		}
	}

	return out, nil
}

// mergeSettings layers a job set over the root defaults: its own executable wins when set,
// and its vars override the root's key by key.
func mergeSettings(globalMaven string, globalVars Vars, set *JobSet) Settings {
	executable := globalMaven
	if set.Maven != nil && !utils.IsBlank(set.Maven.Executable) {
		executable = set.Maven.Executable
	}
	return Settings{
		MavenExecutable: executable,
		Vars:            globalVars.Overlay(set.Vars),
	}
}

func includePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
