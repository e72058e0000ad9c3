// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a packager command (run, list, status) and
// orchestrates the config, pipeline and git packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog and the job catalog
//   - Job selection (numbers or names, batches separated by "\" or ",") lives here
//     so the CLI and prompts resolve selectors the same way
package actions
