package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFile is the project configuration file name. Its presence also marks a project root.
const ConfigFile = ".equality.yml"

// ErrRootNotFound is returned by FindRoot when no indicator is found.
var ErrRootNotFound = errors.New("root not found")

// FindRoot looks upwards from startDir for a project root.
// Indicators are: a .equality.yml file or a .git directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFile) || hasFile(dir, ".git") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
