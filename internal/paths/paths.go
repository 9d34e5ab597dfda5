package paths

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.kmaint.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kmaint")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// HistoryDBPath returns the action-history database path.
func HistoryDBPath() string {
	return filepath.Join(BaseDir(), "history.db")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "kmaint.log")
}

// EnsureDirs creates the data directory tree with proper permissions.
func EnsureDirs() error {
	dirs := []string{
		BaseDir(),
		LogDir(),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
