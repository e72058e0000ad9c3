// Package git provides the repository operations the pipeline needs.
//
// It drives the git executable through process.Executor for everything that
// mutates a working copy:
//   - Cloning (optionally shallow)
//   - Widening the fetch refspec, fetching with prune
//   - Checking out a branch, creating it from the remote when needed
//   - Fast-forward-only pulls
//
// Read-only questions (does this remote or remote branch exist, which branch
// is checked out) are answered with go-git and return a ProbeResult instead
// of an error, so that "absent" is never confused with "the check failed".
package git
