package config

import (
	"fmt"
	"path/filepath"
)

// LoadPaths reads the tool-paths config file and injects the location of
// the shared workflow tools under maindir.
func LoadPaths(pathfile, maindir string) (Mapping, error) {
	paths, err := Load(pathfile)
	if err != nil {
		return nil, fmt.Errorf("failed to load paths: %w", err)
	}
	paths["workflow_tools"] = filepath.Join(maindir, "shared", "tools")
	return paths, nil
}
