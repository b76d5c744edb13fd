package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "cmdr"

	// HomeEnv overrides the application data directory.
	HomeEnv = "CMDR_HOME"
)

// AppDataDir returns the application data directory for config, logs and history.
// CMDR_HOME wins when set; otherwise os.UserConfigDir() is used:
//   - macOS: ~/Library/Application Support/cmdr
//   - Linux: $XDG_CONFIG_HOME/cmdr or ~/.config/cmdr
//   - Windows: %AppData%\cmdr
func AppDataDir() string {
	path := os.Getenv(HomeEnv)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "."
		}
		path = filepath.Join(dir, appDirName)
	}

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the key=value configuration file.
func ConfigFilePath() (string, error) {
	return filepath.Join(AppDataDir(), "cmdrrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdr.log")
}

// DBPath returns the path to the status history database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}
