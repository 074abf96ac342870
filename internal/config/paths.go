package config

import (
	"os"
	"path/filepath"
)

// DefaultOptionsPath is the options file read when none is given.
const DefaultOptionsPath = "courgette.yml"

// FindResource returns the first existing regular file named name under the given
// search directories, or "" when none holds it.
func FindResource(searchPaths []string, name string) string {
	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
