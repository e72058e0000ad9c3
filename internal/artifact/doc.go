// Package artifact locates build outputs inside a repository and copies them to
// the release output directory.
//
// A declared artifact path is used when it names a regular file. Otherwise the
// repository is scanned for .war files under target directories and the best
// candidate (or every candidate, for directory destinations) is copied.
package artifact
