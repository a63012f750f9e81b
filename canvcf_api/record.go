package canvcf_api

import (
	"fmt"
	"strconv"
	"strings"
)

// InfoColumns builds the first eight columns of a record (CHROM, POS,
// ID, REF, ALT, QUAL, FILTER, INFO) from the representative sample's
// segment and the reconciled CNV type.
func InfoColumns(segment *Segment, cnvType CnvType, multisample bool) string {
	alt := cnvType.AltAllele(segment.CopyNumber, multisample)

	// Symbolic alleles carry the padding base, so POS points at the
	// base before the event; literal alleles start on the event itself.
	pos := segment.Begin
	if !strings.HasPrefix(alt, "<") {
		pos = segment.Begin + 1
	}

	id := fmt.Sprintf("Canvas:%s:%s:%d-%d", cnvType.IdToken(), segment.Chromosome, segment.Begin+1, segment.End)

	qual := "."
	if !multisample {
		qual = floatToString(segment.QScore)
	}

	info := []string{}
	if svType := cnvType.SvType(); svType != "" {
		info = append(info, "SVTYPE="+svType)
	}
	if segment.Heterogeneous {
		info = append(info, "SUBCLONAL")
	}
	if segment.CommonCnv {
		info = append(info, "COMMONCNV")
	}
	info = append(info, fmt.Sprintf("END=%d", segment.End))
	if cnvType != Reference {
		info = append(info, fmt.Sprintf("CNVLEN=%d", segment.Length()))
	}
	if segment.StartConfidence != nil {
		info = append(info, fmt.Sprintf("CIPOS=%d,%d", segment.StartConfidence.Left, segment.StartConfidence.Right))
	}
	if segment.EndConfidence != nil {
		info = append(info, fmt.Sprintf("CIEND=%d,%d", segment.EndConfidence.Left, segment.EndConfidence.Right))
	}

	return strings.Join([]string{
		segment.Chromosome,
		strconv.FormatInt(pos, 10),
		id,
		"N",
		alt,
		qual,
		segment.Filter,
		strings.Join(info, ";"),
	}, "\t")
}

// FormatColumns builds the FORMAT column and one value block per
// sample for the segments of one genomic interval. A single sample is
// encoded with the short tag list, two or more samples with the full
// one.
func FormatColumns(segments []*Segment, reportDeNovoQuality bool) string {
	if len(segments) == 1 {
		return singleSampleFormat(segments[0], reportDeNovoQuality)
	}
	return multiSampleFormat(segments, reportDeNovoQuality)
}

func singleSampleFormat(segment *Segment, reportDeNovoQuality bool) string {
	tags := "RC:BC:CN:MCC"
	values := strings.Join([]string{
		floatToString(readCount(segment)),
		strconv.Itoa(segment.BinCount),
		strconv.Itoa(segment.CopyNumber),
		optionalIntToString(segment.MajorChromosomeCount),
	}, ":")

	if reportDeNovoQuality {
		tags += ":DQ"
		values += ":" + optionalFloatToString(segment.DeNovoQScore)
	}

	return tags + "\t" + values
}

func multiSampleFormat(segments []*Segment, reportDeNovoQuality bool) string {
	tags := "RC:BC:CN:MCC:MCCQ:QS"
	if reportDeNovoQuality {
		tags += ":DQ"
	}

	columns := []string{tags}
	for _, segment := range segments {
		values := []string{
			floatToString(readCount(segment)),
			strconv.Itoa(segment.BinCount),
			strconv.Itoa(segment.CopyNumber),
			optionalIntToString(segment.MajorChromosomeCount),
			optionalFloatToString(segment.MajorChromosomeCountScore),
			floatToString(segment.QScore),
		}
		if reportDeNovoQuality {
			values = append(values, optionalFloatToString(segment.DeNovoQScore))
		}
		columns = append(columns, strings.Join(values, ":"))
	}

	return strings.Join(columns, "\t")
}
