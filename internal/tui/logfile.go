package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GITHELPER_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.githelper/logs/githelper.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITHELPER_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "githelper.log"
	}

	return filepath.Join(homeDir, ".githelper", "logs", "githelper.log")
}
