// Package fraglen extracts insert-size metrics from deeptools
// bamPEFragmentSize output tables.
package fraglen

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seqpipes.dev/seqpipes/internal/errors"
)

// Median returns the median fragment length for sample from a
// bamPEFragmentSize metrics table. The table has one row per BAM file; the
// row for a sample is keyed by the filtered_bam/<sample> path prefix and
// carries the median in the sixth column.
func Median(path, sample string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open metrics file %s: %w", path, err)
	}
	defer f.Close()

	prefix := "filtered_bam/" + sample
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return 0, fmt.Errorf("%s: %w", path, errors.ErrBadMetrics)
		}
		median, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, errors.ErrBadMetrics)
		}
		return int(median), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read metrics file %s: %w", path, err)
	}
	return 0, fmt.Errorf("%s: no row for sample %s: %w", path, sample, errors.ErrBadMetrics)
}
