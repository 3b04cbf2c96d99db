package paths

import (
	"os"
	"path/filepath"
)

// GetXiwalHome returns XIWAL_HOME or ~/.xiwal default
func GetXiwalHome() string {
	xiwalHome := os.Getenv("XIWAL_HOME")
	if xiwalHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".xiwal"
		}
		return filepath.Join(homeDir, ".xiwal")
	}
	return ExpandPath(xiwalHome)
}

// GetDBPath returns $XIWAL_HOME/cache.db
func GetDBPath() string {
	return filepath.Join(GetXiwalHome(), "cache.db")
}

// GetSettingsPath returns $XIWAL_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetXiwalHome(), "settings.json")
}

// GetSequencesPath returns $XIWAL_HOME/sequences, the escape sequences of
// the last applied scheme
func GetSequencesPath() string {
	return filepath.Join(GetXiwalHome(), "sequences")
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
