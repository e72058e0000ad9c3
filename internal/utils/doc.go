// Package utils provides small helpers shared by the CLI and actions:
// operator input cleanup and interactive-terminal detection.
package utils
