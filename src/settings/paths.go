package settings

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath overrides the location of the configuration file.
	EnvConfigPath = "WEATHER_CONFIG"

	configFileName = ".weatherrc"
)

// DefaultPath returns $WEATHER_CONFIG, or ~/.weatherrc.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// ensureDir creates the parent directory of path if it is missing.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0700)
}
