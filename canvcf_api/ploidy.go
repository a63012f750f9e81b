package canvcf_api

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The copy number expected for a region no ploidy file mentions
const defaultPloidy = 2

type ploidyInterval struct {
	begin  int64
	end    int64
	ploidy int
}

// A PloidyMap maps a segment to the copy number expected in a
// non-variant sample, e.g. 1 on the sex chromosomes of a male sample.
// A nil PloidyMap is valid and reports the default everywhere.
type PloidyMap struct {
	intervals map[string][]ploidyInterval
}

// LoadPloidyMap reads a BED-like ploidy file with the tab-separated
// columns chromosome, begin, end and ploidy.
func LoadPloidyMap(path string) (*PloidyMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the ploidy file: %w", err)
	}
	defer file.Close()

	ploidyMap := &PloidyMap{intervals: map[string][]ploidyInterval{}}

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		data := strings.Split(line, "\t")
		if len(data) != 4 {
			return nil, fmt.Errorf("%s line %d: expected 4 tab-separated columns, got %d", path, lineNumber, len(data))
		}

		begin, err := strconv.ParseInt(data[1], 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid begin coordinate: %w", path, lineNumber, err)
		}
		end, err := strconv.ParseInt(data[2], 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid end coordinate: %w", path, lineNumber, err)
		}
		ploidy, err := strconv.Atoi(data[3])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid ploidy: %w", path, lineNumber, err)
		}

		chromosome := foldName(data[0])
		ploidyMap.intervals[chromosome] = append(ploidyMap.intervals[chromosome], ploidyInterval{
			begin:  begin,
			end:    end,
			ploidy: ploidy,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ploidyMap, nil
}

// ReferenceCopyNumber returns the copy number expected for the region
// of a segment. The first interval containing the segment's begin
// coordinate wins; segments outside every interval are diploid.
func (ploidyMap *PloidyMap) ReferenceCopyNumber(segment *Segment) int {
	if ploidyMap == nil {
		return defaultPloidy
	}
	for _, interval := range ploidyMap.intervals[foldName(segment.Chromosome)] {
		if segment.Begin >= interval.begin && segment.Begin < interval.end {
			return interval.ploidy
		}
	}
	return defaultPloidy
}
