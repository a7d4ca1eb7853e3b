// Package samplesheet reads the tab-separated sample metadata sheets that
// differential-analysis workflows take as input.
package samplesheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"seqpipes.dev/seqpipes/internal/errors"
)

// Sample is one row of a sample sheet. Extra columns are ignored.
type Sample struct {
	Name      string `csv:"name"`
	Condition string `csv:"condition"`
}

// CheckHeader reports whether the sheet's header row contains the required
// name and condition columns.
func CheckHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open sample sheet %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	fields := strings.Fields(scanner.Text())
	return slices.Contains(fields, "name") && slices.Contains(fields, "condition"), nil
}

// Load parses the sample sheet at path. It returns ErrBadSampleSheet when
// the header lacks the required columns.
func Load(path string) ([]Sample, error) {
	ok, err := CheckHeader(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w (need name and condition)", path, errors.ErrBadSampleSheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample sheet %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.TrimLeadingSpace = true

	var samples []Sample
	if err := gocsv.UnmarshalCSV(r, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse sample sheet %s: %w", path, err)
	}
	return samples, nil
}
