// Package runtime provides the execution context for packager commands.
//
// It carries the logger, the cancellation context and the location of the root
// manifest, and loads the job catalog on first use.
package runtime
