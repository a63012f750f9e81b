package canvcf_api

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadGenomeReference reads a genome reference index (a samtools .fai
// file, or any tab-separated name/length listing) and returns the
// ordered contig set. The FASTA path reported in the VCF header is the
// index path with its ".fai" suffix stripped.
func LoadGenomeReference(path string) (*GenomeReference, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the genome reference index: %w", err)
	}
	defer file.Close()

	reference := &GenomeReference{
		FastaPath: strings.TrimSuffix(path, ".fai"),
		names:     map[string]bool{},
	}

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		data := strings.Split(line, "\t")
		if len(data) < 2 {
			return nil, fmt.Errorf("%s line %d: expected at least 2 tab-separated columns", path, lineNumber)
		}
		name := data[0]
		if name == "" {
			return nil, fmt.Errorf("%s line %d: empty contig name", path, lineNumber)
		}
		length, err := strconv.ParseInt(data[1], 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: could not convert contig length to an integer: %w", path, lineNumber, err)
		}

		folded := foldName(name)
		if reference.names[folded] {
			return nil, fmt.Errorf("%s line %d: duplicate contig %s", path, lineNumber, name)
		}
		reference.names[folded] = true
		reference.Contigs = append(reference.Contigs, Contig{Name: name, Length: length})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the genome reference index: %w", err)
	}

	if len(reference.Contigs) == 0 {
		return nil, fmt.Errorf("the genome reference index %s contains no contigs", path)
	}
	return reference, nil
}
