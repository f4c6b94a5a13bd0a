// Package filex contains filesystem helpers for locating local client data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold the file at path,
// including missing parents, and returns the absolute file path.
// Special SQLite DSNs such as ":memory:" and "file:" URIs are returned unchanged.
func EnsureParentDir(path string) (string, error) {
	if path == ":memory:" || len(path) >= 5 && path[:5] == "file:" {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}
