package fastq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var pairedReads = []string{"_R1", "_R2"}

func TestSampleNames(t *testing.T) {
	t.Parallel()

	t.Run("strips extension and read suffixes from paired mates", func(t *testing.T) {
		t.Parallel()
		names := SampleNames([]string{"a_R1.fastq.gz", "a_R2.fastq.gz"}, ".fastq.gz", pairedReads)
		require.Equal(t, []string{"a"}, names)
	})

	t.Run("both mates of the same sample yield identical names", func(t *testing.T) {
		t.Parallel()
		r1 := SampleNames([]string{"data/sample1_R1.fastq.gz"}, ".fastq.gz", pairedReads)
		r2 := SampleNames([]string{"data/sample1_R2.fastq.gz"}, ".fastq.gz", pairedReads)
		require.Equal(t, r1, r2)
	})

	t.Run("single-end files keep their base name", func(t *testing.T) {
		t.Parallel()
		names := SampleNames([]string{"a.fastq.gz", "b.fastq.gz"}, ".fastq.gz", pairedReads)
		require.Equal(t, []string{"a", "b"}, names)
	})

	t.Run("uses only the final path component", func(t *testing.T) {
		t.Parallel()
		names := SampleNames([]string{"/data/run1/x_R1.fastq.gz", "/other/run2/x_R2.fastq.gz"}, ".fastq.gz", pairedReads)
		require.Equal(t, []string{"x"}, names)
	})

	t.Run("output is sorted ascending without duplicates", func(t *testing.T) {
		t.Parallel()
		names := SampleNames([]string{
			"c_R1.fastq.gz",
			"a_R2.fastq.gz",
			"b_R1.fastq.gz",
			"a_R1.fastq.gz",
		}, ".fastq.gz", pairedReads)
		require.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		infiles := []string{"b_R2.fastq.gz", "a_R1.fastq.gz", "b_R1.fastq.gz"}
		first := SampleNames(infiles, ".fastq.gz", pairedReads)
		second := SampleNames(infiles, ".fastq.gz", pairedReads)
		require.Equal(t, first, second)
	})

	t.Run("skips suffix stripping when fewer than two read suffixes", func(t *testing.T) {
		t.Parallel()
		names := SampleNames([]string{"a_R1.fastq.gz"}, ".fastq.gz", nil)
		require.Equal(t, []string{"a_R1"}, names)

		names = SampleNames([]string{"a_R1.fastq.gz"}, ".fastq.gz", []string{"_R1"})
		require.Equal(t, []string{"a_R1"}, names)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, SampleNames(nil, ".fastq.gz", pairedReads))
	})
}

func TestIsPaired(t *testing.T) {
	t.Parallel()

	t.Run("proper pair is paired", func(t *testing.T) {
		t.Parallel()
		paired := IsPaired([]string{"a_R1.fastq.gz", "a_R2.fastq.gz"}, ".fastq.gz", pairedReads)
		require.True(t, paired)
	})

	t.Run("files without read suffixes are not paired", func(t *testing.T) {
		t.Parallel()
		paired := IsPaired([]string{"a.fastq.gz", "b.fastq.gz"}, ".fastq.gz", pairedReads)
		require.False(t, paired)
	})

	t.Run("mixed single-end and paired input still reports paired", func(t *testing.T) {
		t.Parallel()
		// Documented lenient behavior: a stray single-end file alongside a
		// proper pair does not flip the verdict. Mixed input is not detected.
		paired := IsPaired([]string{"a.fastq.gz", "b_R1.fastq.gz", "b_R2.fastq.gz"}, ".fastq.gz", pairedReads)
		require.True(t, paired)
	})

	t.Run("lone mate is not paired", func(t *testing.T) {
		t.Parallel()
		paired := IsPaired([]string{"a_R1.fastq.gz"}, ".fastq.gz", pairedReads)
		require.False(t, paired)
	})

	t.Run("group larger than two is not paired", func(t *testing.T) {
		t.Parallel()
		paired := IsPaired([]string{
			"lane1/a_R1.fastq.gz",
			"lane2/a_R1.fastq.gz",
			"lane3/a_R1.fastq.gz",
			"b_R1.fastq.gz",
			"b_R2.fastq.gz",
		}, ".fastq.gz", pairedReads)
		require.False(t, paired)
	})

	t.Run("empty input is not paired", func(t *testing.T) {
		t.Parallel()
		require.False(t, IsPaired(nil, ".fastq.gz", pairedReads))
	})

	t.Run("fewer than two read suffixes is not paired", func(t *testing.T) {
		t.Parallel()
		require.False(t, IsPaired([]string{"a_R1.fastq.gz", "a_R2.fastq.gz"}, ".fastq.gz", []string{"_R1"}))
	})
}
