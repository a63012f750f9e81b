package canvcf_api

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// The tab-separated columns of a segment call file, in order
const (
	columnChromosome = iota
	columnBegin
	columnEnd
	columnCopyNumber
	columnMajorChromosomeCount
	columnMajorChromosomeCountScore
	columnBinCount
	columnMeanCount
	columnMedianCount
	columnQScore
	columnDeNovoQScore
	columnFilter
	columnStartConfidence
	columnEndConfidence
	columnFlags

	columnCount
)

// ReadSegments reads a per-sample segment call file (plain or bgzip)
// and returns the calls in file order.
func ReadSegments(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the segment file: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(path, ".gz") {
		return readBgzipSegments(path, file)
	}
	return readPlainSegments(path, file)
}

func readPlainSegments(path string, input *os.File) ([]Segment, error) {
	segments := []Segment{}

	scanner := bufio.NewScanner(input)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		segment, ok, err := parseSegment(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNumber, err)
		}
		if ok {
			segments = append(segments, segment)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return segments, nil
}

func readBgzipSegments(path string, input *os.File) ([]Segment, error) {
	bgReader, err := bgzf.NewReader(input, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s as bgzip: %w", path, err)
	}
	defer bgReader.Close()

	segments := []Segment{}
	lineNumber := 0
	for {
		b, err := readBgzipLine(bgReader)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		lineNumber++
		segment, ok, err := parseSegment(string(bytes.TrimSpace(b)))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNumber, err)
		}
		if ok {
			segments = append(segments, segment)
		}
	}

	return segments, nil
}

// readBgzipLine reads a line from a bgzip file
func readBgzipLine(r *bgzf.Reader) ([]byte, error) {
	var (
		data []byte
		b    byte
		err  error
	)
	for {
		b, err = r.ReadByte()
		if err != nil {
			break
		}
		data = append(data, b)
		if b == '\n' {
			break
		}
	}
	if err == io.EOF && len(data) > 0 {
		return data, nil
	}
	return data, err
}

// Parse one line of a segment call file. Comment and empty lines
// report ok=false.
func parseSegment(line string) (Segment, bool, error) {
	segment := Segment{}

	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return segment, false, nil
	}

	data := strings.Split(line, "\t")
	if len(data) != columnCount {
		return segment, false, fmt.Errorf("expected %d tab-separated columns, got %d", columnCount, len(data))
	}

	var err error
	segment.Chromosome = data[columnChromosome]
	if segment.Chromosome == "" {
		return segment, false, fmt.Errorf("empty chromosome name")
	}

	if segment.Begin, err = strconv.ParseInt(data[columnBegin], 0, 64); err != nil {
		return segment, false, fmt.Errorf("invalid begin coordinate: %w", err)
	}
	if segment.End, err = strconv.ParseInt(data[columnEnd], 0, 64); err != nil {
		return segment, false, fmt.Errorf("invalid end coordinate: %w", err)
	}
	if segment.End < segment.Begin {
		return segment, false, fmt.Errorf("end coordinate %d lies before begin coordinate %d", segment.End, segment.Begin)
	}

	if segment.CopyNumber, err = strconv.Atoi(data[columnCopyNumber]); err != nil {
		return segment, false, fmt.Errorf("invalid copy number: %w", err)
	}
	if segment.MajorChromosomeCount, err = parseOptionalInt(data[columnMajorChromosomeCount]); err != nil {
		return segment, false, fmt.Errorf("invalid major chromosome count: %w", err)
	}
	if segment.MajorChromosomeCountScore, err = parseOptionalFloat(data[columnMajorChromosomeCountScore]); err != nil {
		return segment, false, fmt.Errorf("invalid major chromosome count score: %w", err)
	}
	if segment.BinCount, err = strconv.Atoi(data[columnBinCount]); err != nil {
		return segment, false, fmt.Errorf("invalid bin count: %w", err)
	}
	if segment.MeanCount, err = strconv.ParseFloat(data[columnMeanCount], 64); err != nil {
		return segment, false, fmt.Errorf("invalid mean count: %w", err)
	}
	if segment.MedianCount, err = strconv.ParseFloat(data[columnMedianCount], 64); err != nil {
		return segment, false, fmt.Errorf("invalid median count: %w", err)
	}
	if segment.QScore, err = strconv.ParseFloat(data[columnQScore], 64); err != nil {
		return segment, false, fmt.Errorf("invalid quality score: %w", err)
	}
	if segment.DeNovoQScore, err = parseOptionalFloat(data[columnDeNovoQScore]); err != nil {
		return segment, false, fmt.Errorf("invalid de novo quality score: %w", err)
	}

	segment.Filter = data[columnFilter]
	if segment.Filter == "" {
		return segment, false, fmt.Errorf("empty filter")
	}

	if segment.StartConfidence, err = parseConfidenceInterval(data[columnStartConfidence]); err != nil {
		return segment, false, fmt.Errorf("invalid start confidence interval: %w", err)
	}
	if segment.EndConfidence, err = parseConfidenceInterval(data[columnEndConfidence]); err != nil {
		return segment, false, fmt.Errorf("invalid end confidence interval: %w", err)
	}

	if data[columnFlags] != "." {
		for _, flag := range strings.Split(data[columnFlags], ",") {
			switch flag {
			case "SUBCLONAL":
				segment.Heterogeneous = true
			case "COMMONCNV":
				segment.CommonCnv = true
			default:
				return segment, false, fmt.Errorf("unknown flag %q", flag)
			}
		}
	}

	return segment, true, nil
}

func parseOptionalInt(value string) (*int, error) {
	if value == "." {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalFloat(value string) (*float64, error) {
	if value == "." {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseConfidenceInterval(value string) (*ConfidenceInterval, error) {
	if value == "." {
		return nil, nil
	}
	split := strings.Split(value, ",")
	if len(split) != 2 {
		return nil, fmt.Errorf("expected two comma-separated offsets, got %q", value)
	}
	left, err := strconv.ParseInt(split[0], 0, 64)
	if err != nil {
		return nil, err
	}
	right, err := strconv.ParseInt(split[1], 0, 64)
	if err != nil {
		return nil, err
	}
	return &ConfidenceInterval{Left: left, Right: right}, nil
}
