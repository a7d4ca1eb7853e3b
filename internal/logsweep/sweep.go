// Package logsweep removes empty log files left behind by workflow runs.
package logsweep

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sweep deletes zero-length files directly under root/cluster_logs/ and
// under every root/*/logs/ directory, returning the paths it removed.
// Non-empty files and anything outside those directories are untouched.
func Sweep(root string) ([]string, error) {
	var removed []string

	patterns := []string{
		filepath.Join(root, "cluster_logs", "*"),
		filepath.Join(root, "*", "logs", "*"),
	}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return removed, fmt.Errorf("bad log glob %s: %w", pattern, err)
		}
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() || info.Size() != 0 {
				continue
			}
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", path, err)
			}
			removed = append(removed, path)
		}
	}
	return removed, nil
}
