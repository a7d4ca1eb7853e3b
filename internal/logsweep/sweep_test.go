package logsweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSweep(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	emptyCluster := filepath.Join(root, "cluster_logs", "job.1.err")
	fullCluster := filepath.Join(root, "cluster_logs", "job.1.out")
	emptyStep := filepath.Join(root, "FASTQ", "logs", "trim.log")
	fullStep := filepath.Join(root, "FASTQ", "logs", "map.log")
	emptyElsewhere := filepath.Join(root, "FASTQ", "stray.log")
	emptyNested := filepath.Join(root, "a", "b", "logs", "deep.log")

	touch(t, emptyCluster, "")
	touch(t, fullCluster, "done\n")
	touch(t, emptyStep, "")
	touch(t, fullStep, "ok\n")
	touch(t, emptyElsewhere, "")
	touch(t, emptyNested, "")

	removed, err := Sweep(root)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{emptyCluster, emptyStep}, removed)

	require.NoFileExists(t, emptyCluster)
	require.NoFileExists(t, emptyStep)
	require.FileExists(t, fullCluster)
	require.FileExists(t, fullStep)
	// only cluster_logs/ and */logs/ are swept
	require.FileExists(t, emptyElsewhere)
	require.FileExists(t, emptyNested)
}

func TestSweepNoLogDirs(t *testing.T) {
	t.Parallel()

	removed, err := Sweep(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, removed)
}
