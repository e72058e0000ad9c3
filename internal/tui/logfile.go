package tui

import "os"

// LogFilePath returns the log file to mirror output to: the flag value when set,
// else PACKAGER_LOG_FILE. An empty result disables file logging.
func LogFilePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("PACKAGER_LOG_FILE")
}
