package config

import (
	"os"
	"path/filepath"
)

// GetDevconHome returns DEVCON_HOME or ~/.devcon default
func GetDevconHome() string {
	devconHome := os.Getenv("DEVCON_HOME")
	if devconHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".devcon"
		}
		return filepath.Join(homeDir, ".devcon")
	}
	return ExpandPath(devconHome)
}

// GetDBPath returns $DEVCON_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetDevconHome(), "state.db")
}

// GetHistoryPath returns $DEVCON_HOME/history.txt
func GetHistoryPath() string {
	return filepath.Join(GetDevconHome(), "history.txt")
}

// GetIndicatorPath returns $DEVCON_HOME/indicator
func GetIndicatorPath() string {
	return filepath.Join(GetDevconHome(), "indicator")
}

// GetSettingsPath returns $DEVCON_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetDevconHome(), "settings.json")
}

// GetSSHDir returns $DEVCON_HOME/ssh, holding the host key and authorized_keys
func GetSSHDir() string {
	return filepath.Join(GetDevconHome(), "ssh")
}

// GetStagingDir returns $DEVCON_HOME/firmware
func GetStagingDir() string {
	return filepath.Join(GetDevconHome(), "firmware")
}

// EnsureDevconHome creates the home directory when missing
func EnsureDevconHome() error {
	return os.MkdirAll(GetDevconHome(), 0755)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
