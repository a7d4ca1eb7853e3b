package organisms

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seqpipes.dev/seqpipes/internal/errors"
)

func writeOrganism(t *testing.T, dir, name, content string) string {
	t.Helper()
	orgDir := filepath.Join(dir, "shared", "organisms")
	require.NoError(t, os.MkdirAll(orgDir, 0755))
	path := filepath.Join(orgDir, name+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("finds a registered organism by name", func(t *testing.T) {
		t.Parallel()
		maindir := t.TempDir()
		want := writeOrganism(t, maindir, "dm6", "genome_size: 142573017\n")

		m, path, err := Resolve("dm6", maindir)
		require.NoError(t, err)
		require.Equal(t, want, path)
		require.Equal(t, 142573017, m["genome_size"])
	})

	t.Run("falls back to a direct file path", func(t *testing.T) {
		t.Parallel()
		custom := filepath.Join(t.TempDir(), "myGenome.yaml")
		require.NoError(t, os.WriteFile(custom, []byte("genome_size: 1000\n"), 0644))

		m, path, err := Resolve(custom, t.TempDir())
		require.NoError(t, err)
		require.Equal(t, custom, path)
		require.Equal(t, 1000, m["genome_size"])
	})

	t.Run("registered name wins over a same-named file", func(t *testing.T) {
		t.Parallel()
		maindir := t.TempDir()
		registered := writeOrganism(t, maindir, "dm6", "source: registered\n")

		// a stray file literally named dm6 in the working directory would
		// only be picked up if the registry lookup missed
		m, path, err := Resolve("dm6", maindir)
		require.NoError(t, err)
		require.Equal(t, registered, path)
		require.Equal(t, "registered", m["source"])
	})

	t.Run("unknown genome returns ErrGenomeNotFound", func(t *testing.T) {
		t.Parallel()
		_, _, err := Resolve("noSuchGenome", t.TempDir())
		require.ErrorIs(t, err, errors.ErrGenomeNotFound)

		var gnf *errors.GenomeNotFoundError
		require.True(t, stderrors.As(err, &gnf))
		require.Equal(t, "noSuchGenome", gnf.Genome)
	})

	t.Run("reserved keys are stripped from organism configs", func(t *testing.T) {
		t.Parallel()
		maindir := t.TempDir()
		writeOrganism(t, maindir, "mm10", "maindir: /leaked\ngenome_size: 2652783500\n")

		m, _, err := Resolve("mm10", maindir)
		require.NoError(t, err)
		require.NotContains(t, m, "maindir")
	})
}
