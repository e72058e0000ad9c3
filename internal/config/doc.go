// Package config loads packager manifests.
//
// It handles:
//   - The root manifest (package.yml) and the job-set files it includes
//   - Merging global defaults (Maven executable, variables) into each job set
//   - ${name} variable substitution
package config
