package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/internal/utils"
)

// MavenSettings is the build-tool block shared by the root manifest and job-set files
type MavenSettings struct {
	Executable string `yaml:"executable,omitempty"`
}

// Include references a job-set file from the root manifest
type Include struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// RootManifest models package.yml
type RootManifest struct {
	Maven    *MavenSettings `yaml:"maven,omitempty"`
	Vars     Vars           `yaml:"vars,omitempty"`
	Includes []Include      `yaml:"includes"`
}

// JobSet models an included file such as apps.yml
type JobSet struct {
	Maven *MavenSettings `yaml:"maven,omitempty"`
	Vars  Vars           `yaml:"vars,omitempty"`
	Jobs  Jobs           `yaml:"jobs"`
}

// BuildSpec is the optional per-repo Maven invocation
type BuildSpec struct {
	WorkDir string   `yaml:"workDir,omitempty"`
	Goals   []string `yaml:"goals,omitempty"`
}

// Repo is one working copy a job synchronizes and optionally builds
type Repo struct {
	Name    string     `yaml:"name"`
	Path    string     `yaml:"path"`
	Branch  string     `yaml:"branch"`
	GitURL  string     `yaml:"gitUrl,omitempty"`
	Shallow string     `yaml:"shallow,omitempty"`
	Maven   *BuildSpec `yaml:"maven,omitempty"`
}

// HasGoals reports whether the repo declares a build with at least one goal
func (r Repo) HasGoals() bool {
	return r.Maven != nil && len(r.Maven.Goals) > 0
}

// ArtifactFile binds a file inside a repo to a destination under the output directory
type ArtifactFile struct {
	Repo string `yaml:"repo"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Artifacts is the optional output block of a job
type Artifacts struct {
	OutputDir string         `yaml:"outputDir"`
	Files     []ArtifactFile `yaml:"files"`
}

// Job is one release-packaging unit
type Job struct {
	Repos     []Repo     `yaml:"repos"`
	Artifacts *Artifacts `yaml:"artifacts,omitempty"`
}

// Jobs keeps jobs keyed by name in the order they are declared in the YAML document
type Jobs struct {
	names  []string
	byName map[string]Job
}

// UnmarshalYAML decodes a mapping of job name to job, preserving declaration order
func (j *Jobs) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: jobs must be a mapping of job name to job", value.Line)
	}
	j.names = nil
	j.byName = make(map[string]Job, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		name := keyNode.Value
		if _, exists := j.byName[name]; exists {
			return fmt.Errorf("line %d: job %q is defined more than once", keyNode.Line, name)
		}
		var job Job
		if err := valueNode.Decode(&job); err != nil {
			return fmt.Errorf("job %q: %w", name, err)
		}
		j.names = append(j.names, name)
		j.byName[name] = job
	}
	return nil
}

// Names returns job names in declaration order
func (j Jobs) Names() []string {
	return append([]string(nil), j.names...)
}

// Get returns the job with the given name
func (j Jobs) Get(name string) (Job, bool) {
	job, ok := j.byName[name]
	return job, ok
}

// Len returns the number of jobs
func (j Jobs) Len() int {
	return len(j.names)
}

// LoadRoot reads and parses a root manifest
func LoadRoot(path string) (*RootManifest, error) {
	var root RootManifest
	if err := readYAML(path, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// LoadJobSet reads and parses an included job-set file
func LoadJobSet(path string) (*JobSet, error) {
	var set JobSet
	if err := readYAML(path, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func readYAML(path string, out interface{}) error {
	info, err := os.Stat(path)
	if err != nil {
		return pkgerrors.NewConfigError(path, "config file not found", err)
	}
	if !info.Mode().IsRegular() {
		return pkgerrors.NewConfigError(path, "config path is not a regular file", nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgerrors.NewConfigError(path, "failed to read config", err)
	}
	if utils.IsBlank(string(data)) {
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return pkgerrors.NewConfigError(path, "failed to parse config", err)
	}
	return nil
}
