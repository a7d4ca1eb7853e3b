package fastq

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks dir and collects files whose name ends with ext, returned
// sorted lexicographically for deterministic processing order.
func Discover(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
