// Package organisms resolves genome/organism metadata files.
//
// A genome can be referred to either by a registered name (resolved under
// <maindir>/shared/organisms/<name>.yaml) or by a direct path to a
// user-supplied YAML file. Registered names win over paths.
package organisms

import (
	"os"
	"path/filepath"

	"seqpipes.dev/seqpipes/internal/config"
	"seqpipes.dev/seqpipes/internal/errors"
)

// Resolve returns the organism configuration for genome, along with the
// path of the file it was loaded from. If neither a registered organism
// nor a direct file exists, it returns ErrGenomeNotFound.
func Resolve(genome, maindir string) (config.Mapping, string, error) {
	registered := filepath.Join(maindir, "shared", "organisms", genome+".yaml")
	if isFile(registered) {
		m, err := config.Load(registered)
		if err != nil {
			return nil, "", err
		}
		return m, registered, nil
	}

	if isFile(genome) {
		m, err := config.Load(genome)
		if err != nil {
			return nil, "", err
		}
		return m, genome, nil
	}

	return nil, "", errors.NewGenomeNotFoundError(genome)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
