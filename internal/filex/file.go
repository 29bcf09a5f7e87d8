// Package filex holds small filesystem helpers for the command-line tools.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteSecret writes data to dir/name readable by the owner only. A relative
// dir is resolved against the working directory and created if missing.
func WriteSecret(dir, name string, data []byte) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
