// Package fastq derives sample identities from FASTQ file names.
//
// Workflows receive a flat list of input files and need to know which
// biological samples they represent and whether the run is paired-end.
// Both questions are answered purely from the file naming convention
// (<sample><readSuffix><ext>, e.g. mySample_R1.fastq.gz).
package fastq

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// SampleNames returns the sorted, deduplicated sample names for the given
// input files. The extension and, when two read suffixes are provided, both
// read suffixes are stripped from each base name. Fewer than two read
// suffixes means single-end naming and suffix stripping is skipped.
//
// Files that do not follow the naming convention are not an error; their
// names are stripped best-effort and included as-is. Pipeline setup should
// not abort over an odd filename.
func SampleNames(infiles []string, ext string, reads []string) []string {
	seen := make(map[string]bool)
	for _, infile := range infiles {
		name := strings.ReplaceAll(filepath.Base(infile), ext, "")
		if len(reads) >= 2 {
			name = strings.ReplaceAll(name, reads[0], "")
			name = strings.ReplaceAll(name, reads[1], "")
		}
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPaired reports whether the given input files look like paired-end data.
//
// Files whose stripped base name ends in one of the two read suffixes are
// grouped by the preceding prefix; the input is considered paired when at
// least one group exists and the largest group has exactly two members.
// Files without a recognized suffix are ignored for the decision.
//
// A mixture of true single-end and true paired-end files still reports
// paired as long as the largest group is a proper pair. Callers that need
// to reject mixed input must check for it themselves.
func IsPaired(infiles []string, ext string, reads []string) bool {
	if len(reads) < 2 {
		return false
	}

	re := regexp.MustCompile("^(.+)(" + regexp.QuoteMeta(reads[0]) + "|" + regexp.QuoteMeta(reads[1]) + ")$")

	mates := make(map[string][]string)
	for _, infile := range infiles {
		name := strings.ReplaceAll(filepath.Base(infile), ext, "")
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		base := m[1]
		mates[base] = append(mates[base], infile)
	}
	if len(mates) == 0 {
		return false
	}

	largest := 0
	for _, files := range mates {
		if len(files) > largest {
			largest = len(files)
		}
	}
	return largest == 2
}
