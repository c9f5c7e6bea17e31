package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirName is the directory holding notekeeper data inside a project.
const DataDirName = ".notekeeper"

// FindRoot recursively looks upwards for a directory containing DataDirName.
// If found, returns the absolute path to that directory's parent.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, DataDirName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

// ResolveDataDir picks the data directory: explicit wins, then the nearest
// project root above cwd, then DataDirName under the home directory.
func ResolveDataDir(explicit, cwd string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if root, err := FindRoot(cwd); err == nil {
		return filepath.Join(root, DataDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
