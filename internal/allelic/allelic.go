// Package allelic validates the argument combinations for allele-specific
// mapping workflows.
package allelic

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"seqpipes.dev/seqpipes/internal/errors"
)

// Mode says how allele-specific mapping inputs will be prepared.
type Mode string

const (
	// ModeNone means allelic mapping was not requested.
	ModeNone Mode = ""

	// ModeCreateAndMap means SNPs are first extracted from a VCF file and
	// an n-masked genome is built before mapping.
	ModeCreateAndMap Mode = "create_and_map"

	// ModeMapOnly means a SNP file and n-masked index already exist.
	ModeMapOnly Mode = "map_only"
)

// Options carries the user-facing arguments that select allelic mapping.
type Options struct {
	// Mode is the raw --mode value, a comma- or semicolon-separated list.
	Mode string

	SNPFile      string
	VCFFile      string
	Strains      string
	NMaskedIndex string
}

var modeSep = regexp.MustCompile(`[,;]`)

// ResolveMode validates opts and decides how allele-specific inputs are
// prepared. It returns ModeNone when allelic mapping is not requested.
func ResolveMode(opts Options) (Mode, error) {
	modes := splitModes(opts.Mode)

	if slices.Contains(modes, "allelic-mapping") && slices.Contains(modes, "mapping") {
		return ModeNone, errors.ErrModeConflict
	}
	if !slices.Contains(modes, "allelic-mapping") {
		return ModeNone, nil
	}

	if !exists(opts.SNPFile) {
		// no SNP file yet, so SNPs must come from a VCF
		if !exists(opts.VCFFile) {
			return ModeNone, fmt.Errorf("allele-specific mapping needs either a VCF file or a SNP file")
		}
		if opts.Strains == "" {
			return ModeNone, fmt.Errorf("allele-specific mapping needs a strain ID to extract from %s", opts.VCFFile)
		}
		return ModeCreateAndMap, nil
	}

	// SNP file present: the n-masked genome index must exist alongside it
	if !exists(filepath.Dir(opts.NMaskedIndex)) {
		return ModeNone, fmt.Errorf("allele-specific mapping needs an n-masked index")
	}
	return ModeMapOnly, nil
}

func splitModes(mode string) []string {
	var modes []string
	for _, m := range modeSep.Split(mode, -1) {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			modes = append(modes, m)
		}
	}
	return modes
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
