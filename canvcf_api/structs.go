package canvcf_api

// A struct representing one genomic interval call for one sample
type Segment struct {
	// The chromosome the segment lies on
	Chromosome string

	// The 0-based, half-open coordinates of the segment
	Begin int64
	End   int64

	// The called copy number of the segment
	CopyNumber int

	// The filter status of the segment ("PASS" or a named filter)
	Filter string

	// The number of coverage bins the call is based on
	BinCount int

	// The mean and median read counts per bin over the segment
	MeanCount   float64
	MedianCount float64

	// The number of copies of the most frequent parental chromosome,
	// nil when no allele counts were available
	MajorChromosomeCount *int

	// The quality score of the major chromosome count, nil when absent
	MajorChromosomeCountScore *float64

	// The Phred-scaled quality score of the call
	QScore float64

	// The Phred-scaled de novo quality score, nil when not computed
	DeNovoQScore *float64

	// Confidence intervals around the start and end positions, nil when
	// the call is precise
	StartConfidence *ConfidenceInterval
	EndConfidence   *ConfidenceInterval

	// True when the call is subclonal (heterogeneous across cells)
	Heterogeneous bool

	// True when the call matches a known common copy-number variant
	CommonCnv bool
}

// Length returns the number of reference positions the segment spans.
func (segment *Segment) Length() int64 {
	return segment.End - segment.Begin
}

// A struct representing a confidence interval around a position,
// as offsets relative to that position
type ConfidenceInterval struct {
	Left  int64
	Right int64
}

// A struct representing one contig of the genome reference
type Contig struct {
	// The name of the contig
	Name string

	// The length of the contig in bases
	Length int64
}

// A struct representing the genome reference the calls were made against.
// It defines the chromosome emission order and the authoritative contig
// name set for the integrity check.
type GenomeReference struct {
	// The path to the FASTA file the reference was loaded from
	FastaPath string

	// All contigs in reference order
	Contigs []Contig

	// Case-folded contig names for case-insensitive membership checks
	names map[string]bool
}

// HasContig reports whether a chromosome name belongs to the reference,
// ignoring letter case.
func (reference *GenomeReference) HasContig(name string) bool {
	return reference.names[foldName(name)]
}

//
// Manifest structs
//

// The struct representing the run manifest
// The manifest is a YAML file
type Manifest struct {
	// The samples of the run, in VCF column order; the first sample is
	// the representative sample for shared record fields
	Samples []ManifestSample

	// Whether family relationships between the samples are known; when
	// false the cross-sample PASS rescue rule applies
	Pedigree bool

	// Extra header lines to emit verbatim after the fixed header block
	HeaderLines []string `yaml:"header_lines"`
}

// A struct representing one sample entry of the manifest
type ManifestSample struct {
	// The sample name used in the VCF column header
	Name string

	// The path to the segment call file of the sample
	Segments string

	// The path to the ploidy BED file of the sample, empty when the
	// whole genome is assumed diploid
	Ploidy string

	// The expected coverage of a diploid region, nil when unknown
	DiploidCoverage *float64 `yaml:"diploid_coverage"`
}
