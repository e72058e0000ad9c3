package utils

import "os"

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	if os.Getenv("PACKAGER_NON_INTERACTIVE") != "" {
		return false
	}

	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
