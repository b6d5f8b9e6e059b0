package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned by FindRoot when no marker directory exists above startDir.
var ErrRootNotFound = errors.New("root not found")

// AppName names the per-user fallback directory.
const AppName = "agenda"

// FindRoot walks upwards from startDir looking for a directory that contains the
// systemDir marker (".agenda" when empty) and returns that directory.
func FindRoot(startDir, systemDir string) (string, error) {
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, systemDir)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

// ResolveDir picks the data directory: an explicit path wins, then the marker directory
// of the nearest project above startDir, then the per-user config directory.
func ResolveDir(explicit, startDir, systemDir string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}
	if root, err := FindRoot(startDir, systemDir); err == nil {
		return filepath.Join(root, systemDir), nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no data directory: %w", err)
	}
	return filepath.Join(cfg, AppName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
