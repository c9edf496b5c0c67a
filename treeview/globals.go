package internal

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	DefaultAppName = "treeview"

	// DefaultConfigPath is the default path to the config directory
	DefaultConfigPath       = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultGlobalConfigFile = filepath.Join(DefaultConfigPath, "config.yaml")

	// Default traversal settings
	DefaultStartPath = "." // current directory
	DefaultLogLevel  = "warn"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current working directory if home directory is unavailable
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		return cwd
	}
	return homeDir
}

// NewLogger returns a zerolog logger writing to w at the given level.
// Unknown or empty levels fall back to DefaultLogLevel.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl, _ = zerolog.ParseLevel(DefaultLogLevel)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
