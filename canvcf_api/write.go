package canvcf_api

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	cli "github.com/urfave/cli/v2"
)

// The settings of one writer invocation. Tool name and version feed
// the ##source header line and are passed in explicitly instead of
// being read from process-wide state.
type Settings struct {
	ToolName    string
	ToolVersion string

	// The quality threshold the qN filter header line names
	QualityThreshold int

	// When set, the DQ format tag is declared and emitted
	DeNovoQualityThreshold *int

	// Whether family relationships between the samples are known
	Pedigree bool

	// Extra header lines, emitted verbatim
	HeaderLines []string
}

// The fully loaded inputs of one sample
type SampleInput struct {
	Name            string
	Segments        []Segment
	Ploidy          *PloidyMap
	DiploidCoverage *float64
}

// Execute loads all inputs named by the command line and writes the
// VCF file.
func Execute(Cctx *cli.Context) error {
	reference, err := LoadGenomeReference(Cctx.String("genome"))
	if err != nil {
		return err
	}

	manifest, err := ReadManifest(Cctx.String("manifest"))
	if err != nil {
		return err
	}

	samples := make([]SampleInput, len(manifest.Samples))
	for index, manifestSample := range manifest.Samples {
		segments, err := ReadSegments(manifestSample.Segments)
		if err != nil {
			return err
		}

		var ploidy *PloidyMap
		if manifestSample.Ploidy != "" {
			if ploidy, err = LoadPloidyMap(manifestSample.Ploidy); err != nil {
				return err
			}
		}

		samples[index] = SampleInput{
			Name:            manifestSample.Name,
			Segments:        segments,
			Ploidy:          ploidy,
			DiploidCoverage: manifestSample.DiploidCoverage,
		}
	}

	settings := &Settings{
		ToolName:         Cctx.App.Name,
		ToolVersion:      Cctx.App.Version,
		QualityThreshold: Cctx.Int("quality-threshold"),
		Pedigree:         manifest.Pedigree,
		HeaderLines:      manifest.HeaderLines,
	}
	if Cctx.IsSet("denovo-quality-threshold") {
		threshold := Cctx.Int("denovo-quality-threshold")
		settings.DeNovoQualityThreshold = &threshold
	}

	return Write(Cctx.String("output"), samples, reference, settings)
}

// Write emits the whole VCF file: the header once, then one record
// per genomic interval, in genome-reference contig order and within a
// contig in input order. An empty output path writes to stdout; a
// ".gz" suffix block-compresses the output.
func Write(outputPath string, samples []SampleInput, reference *GenomeReference, settings *Settings) error {
	if len(samples) == 0 {
		return fmt.Errorf("at least one sample is required")
	}
	if err := validateAlignment(samples); err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	if err := writeRecords(writer, samples, reference, settings); err != nil {
		closeOutput()
		return err
	}
	return closeOutput()
}

func writeRecords(writer io.Writer, samples []SampleInput, reference *GenomeReference, settings *Settings) error {
	sampleNames := make([]string, len(samples))
	for index, sample := range samples {
		sampleNames[index] = sample.Name
	}

	representative := samples[0]
	err := WriteHeader(writer, representative.Segments, representative.DiploidCoverage, reference, sampleNames, settings)
	if err != nil {
		return err
	}

	multisample := len(samples) > 1
	reportDeNovoQuality := settings.DeNovoQualityThreshold != nil

	for _, contig := range reference.Contigs {
		contigName := foldName(contig.Name)
		for index := range representative.Segments {
			segment := &representative.Segments[index]
			if foldName(segment.Chromosome) != contigName {
				continue
			}

			// Without pedigree information a PASS call in any sample
			// rescues the shared record from the representative's filter
			if !settings.Pedigree && multisample && segment.Filter != "PASS" {
				for _, sample := range samples {
					if sample.Segments[index].Filter == "PASS" {
						segment.Filter = "PASS"
						break
					}
				}
			}

			intervalSegments := make([]*Segment, len(samples))
			elementaryTypes := make([]CnvType, len(samples))
			for sampleIndex := range samples {
				sampleSegment := &samples[sampleIndex].Segments[index]
				intervalSegments[sampleIndex] = sampleSegment
				elementaryTypes[sampleIndex] = sampleSegment.ElementaryType(
					samples[sampleIndex].Ploidy.ReferenceCopyNumber(sampleSegment))
			}

			cnvType, err := Reconcile(elementaryTypes)
			if err != nil {
				return fmt.Errorf("%s:%d-%d: %w", segment.Chromosome, segment.Begin+1, segment.End, err)
			}

			record := InfoColumns(segment, cnvType, multisample) +
				"\t" + FormatColumns(intervalSegments, reportDeNovoQuality)
			if err := writeLine(writer, record); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateAlignment checks that every sample's segment list has the
// same length and, at each index, the same interval as the first
// sample's. Misaligned inputs would silently scramble the per-sample
// columns otherwise.
func validateAlignment(samples []SampleInput) error {
	first := samples[0]
	for _, sample := range samples[1:] {
		if len(sample.Segments) != len(first.Segments) {
			return fmt.Errorf("sample %s has %d segments, sample %s has %d: the segment lists are not aligned",
				first.Name, len(first.Segments), sample.Name, len(sample.Segments))
		}
		for index := range sample.Segments {
			want := &first.Segments[index]
			got := &sample.Segments[index]
			if foldName(got.Chromosome) != foldName(want.Chromosome) || got.Begin != want.Begin || got.End != want.End {
				return fmt.Errorf("segment %d of sample %s (%s:%d-%d) does not match sample %s (%s:%d-%d)",
					index+1, sample.Name, got.Chromosome, got.Begin, got.End,
					first.Name, want.Chromosome, want.Begin, want.End)
			}
		}
	}
	return nil
}

// openOutput opens the output sink and returns it with its close
// function. Closing is the caller's job on every exit path.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create the output file: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		bgWriter := bgzf.NewWriter(file, 1)
		return bgWriter, func() error {
			if err := bgWriter.Close(); err != nil {
				file.Close()
				return err
			}
			return file.Close()
		}, nil
	}

	buffered := bufio.NewWriter(file)
	return buffered, func() error {
		if err := buffered.Flush(); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}, nil
}

// Write a line to the output sink
func writeLine(writer io.Writer, line string) error {
	if _, err := io.WriteString(writer, line+"\n"); err != nil {
		return fmt.Errorf("failed to write to the output file: %w", err)
	}
	return nil
}
