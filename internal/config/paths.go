package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for donegen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.donegen/config.yaml).
	ConfigFile string

	// StoreFile is the path to the shared answer store (~/.donegen/store.yaml).
	StoreFile string

	// HomeDir is the donegen home directory (~/.donegen).
	HomeDir string
}

// LocalStoreName is the project-local answer store used when the shared one is not writable.
const LocalStoreName = ".donegen-store.yaml"

// DefaultPaths returns the default paths for donegen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	donegenHome := filepath.Join(homeDir, ".donegen")

	return &Paths{
		ConfigFile: filepath.Join(donegenHome, "config.yaml"),
		StoreFile:  filepath.Join(donegenHome, "store.yaml"),
		HomeDir:    donegenHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If DONEGEN_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("DONEGEN_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// LocalStoreFile returns the project-local answer store path.
func LocalStoreFile(projectRoot string) string {
	return filepath.Join(projectRoot, LocalStoreName)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
