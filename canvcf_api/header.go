package canvcf_api

import (
	"fmt"
	"io"
	"strings"
)

// WriteHeader emits the VCF meta-header, the contig lines, the fixed
// ALT/FILTER/INFO/FORMAT declaration block and the column header line,
// then checks every segment's chromosome against the genome reference.
// The segments are those of the representative sample; they drive the
// overall ploidy line and the integrity check.
func WriteHeader(
	writer io.Writer,
	segments []Segment,
	diploidCoverage *float64,
	reference *GenomeReference,
	sampleNames []string,
	settings *Settings,
) error {
	lines := []string{
		"##fileformat=VCFv4.1",
		fmt.Sprintf("##source=%s %s", settings.ToolName, settings.ToolVersion),
		fmt.Sprintf("##reference=%s", reference.FastaPath),
	}

	// Length-weighted mean copy number over the PASS calls
	var weight, weightedCopyNumber float64
	for index := range segments {
		segment := &segments[index]
		if segment.Filter != "PASS" {
			continue
		}
		weight += float64(segment.Length())
		weightedCopyNumber += float64(segment.CopyNumber) * float64(segment.Length())
	}
	if weight > 0 {
		lines = append(lines, fmt.Sprintf("##OverallPloidy=%s", floatToString(weightedCopyNumber/weight)))
		if diploidCoverage != nil {
			lines = append(lines, fmt.Sprintf("##DiploidCoverage=%s", floatToString(*diploidCoverage)))
		}
	}

	lines = append(lines, settings.HeaderLines...)

	for _, contig := range reference.Contigs {
		lines = append(lines, fmt.Sprintf("##contig=<ID=%s,length=%d>", contig.Name, contig.Length))
	}

	lines = append(lines, "##ALT=<ID=CNV,Description=\"Copy number variable region\">")
	for copyNumber := 0; copyNumber <= 5; copyNumber++ {
		// CN1 is the reference allele and never appears as an ALT
		if copyNumber == 1 {
			continue
		}
		lines = append(lines, fmt.Sprintf("##ALT=<ID=CN%d,Description=\"Copy number allele: %d copies\">", copyNumber, copyNumber))
	}

	lines = append(lines,
		fmt.Sprintf("##FILTER=<ID=q%d,Description=\"Quality below %d\">", settings.QualityThreshold, settings.QualityThreshold),
		"##FILTER=<ID=L10kb,Description=\"Length shorter than 10kb\">",
		"##INFO=<ID=CIEND,Number=2,Type=Integer,Description=\"Confidence interval around END for imprecise variants\">",
		"##INFO=<ID=CIPOS,Number=2,Type=Integer,Description=\"Confidence interval around POS for imprecise variants\">",
		"##INFO=<ID=CNVLEN,Number=1,Type=Integer,Description=\"Number of reference positions spanned by this CNV\">",
		"##INFO=<ID=END,Number=1,Type=Integer,Description=\"End position of the variant described in this record\">",
		"##INFO=<ID=SVTYPE,Number=1,Type=String,Description=\"Type of structural variant\">",
		"##INFO=<ID=SUBCLONAL,Number=0,Type=Flag,Description=\"Subclonal variant\">",
		"##INFO=<ID=COMMONCNV,Number=0,Type=Flag,Description=\"Common copy-number variant\">",
		"##FORMAT=<ID=RC,Number=1,Type=Float,Description=\"Mean counts per bin in the region\">",
		"##FORMAT=<ID=BC,Number=1,Type=Integer,Description=\"Number of bins in the region\">",
		"##FORMAT=<ID=CN,Number=1,Type=Integer,Description=\"Copy number genotype for imprecise events\">",
		"##FORMAT=<ID=MCC,Number=1,Type=Integer,Description=\"Major chromosome count (equal to copy number for LOH regions)\">",
		"##FORMAT=<ID=MCCQ,Number=1,Type=Float,Description=\"Major chromosome count quality score\">",
		"##FORMAT=<ID=QS,Number=1,Type=Float,Description=\"Quality score\">",
	)
	if settings.DeNovoQualityThreshold != nil {
		lines = append(lines, fmt.Sprintf(
			"##FORMAT=<ID=DQ,Number=1,Type=Float,Description=\"De novo quality. Threshold for passing de novo call: %d\">",
			*settings.DeNovoQualityThreshold,
		))
	}

	columnHeaders := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}
	columnHeaders = append(columnHeaders, sampleNames...)
	lines = append(lines, strings.Join(columnHeaders, "\t"))

	for _, line := range lines {
		if err := writeLine(writer, line); err != nil {
			return err
		}
	}

	// Integrity check: every call must lie on a known contig
	for index := range segments {
		if !reference.HasContig(segments[index].Chromosome) {
			return fmt.Errorf("chromosome %s is not present in the genome reference", segments[index].Chromosome)
		}
	}

	return nil
}
