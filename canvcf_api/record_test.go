package canvcf_api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gainSegment() *Segment {
	return &Segment{
		Chromosome: "chr1",
		Begin:      10000,
		End:        20000,
		CopyNumber: 3,
		Filter:     "PASS",
		BinCount:   100,
		MeanCount:  151.339,
		QScore:     30.5,
	}
}

func TestInfoColumnsGain(t *testing.T) {
	columns := InfoColumns(gainSegment(), Gain, false)

	assert.Equal(t,
		"chr1\t10000\tCanvas:GAIN:chr1:10001-20000\tN\t<CN3>\t30.50\tPASS\tSVTYPE=GAIN;END=20000;CNVLEN=10000",
		columns)
}

func TestInfoColumnsReference(t *testing.T) {
	segment := gainSegment()
	segment.CopyNumber = 2
	columns := strings.Split(InfoColumns(segment, Reference, false), "\t")

	// A literal ALT needs no padding base, POS moves onto the event
	assert.Equal(t, "10001", columns[1])
	assert.Equal(t, "Canvas:REF:chr1:10001-20000", columns[2])
	assert.Equal(t, ".", columns[4])
	assert.Equal(t, "END=20000", columns[7])
	assert.NotContains(t, columns[7], "SVTYPE")
	assert.NotContains(t, columns[7], "CNVLEN")
}

func TestInfoColumnsSymbolicPos(t *testing.T) {
	// A symbolic ALT carries the padding base, POS stays on begin
	columns := strings.Split(InfoColumns(gainSegment(), Gain, false), "\t")
	assert.Equal(t, "10000", columns[1])
	assert.Equal(t, "<CN3>", columns[4])
}

func TestInfoColumnsMultisample(t *testing.T) {
	columns := strings.Split(InfoColumns(gainSegment(), Gain, true), "\t")

	assert.Equal(t, ".", columns[5], "multisample records carry no shared quality")
	assert.Equal(t, "<CNV>", columns[4])
}

func TestInfoColumnsConfidenceIntervalsAndFlags(t *testing.T) {
	segment := gainSegment()
	segment.StartConfidence = &ConfidenceInterval{Left: -200, Right: 200}
	segment.EndConfidence = &ConfidenceInterval{Left: -150, Right: 300}
	segment.Heterogeneous = true
	segment.CommonCnv = true

	info := strings.Split(InfoColumns(segment, Gain, false), "\t")[7]
	assert.Equal(t, "SVTYPE=GAIN;SUBCLONAL;COMMONCNV;END=20000;CNVLEN=10000;CIPOS=-200,200;CIEND=-150,300", info)
}

func TestFormatColumnsSingleSample(t *testing.T) {
	segment := gainSegment()
	columns := FormatColumns([]*Segment{segment}, false)
	assert.Equal(t, "RC:BC:CN:MCC\t151.34:100:3:.", columns)

	segment.MajorChromosomeCount = intPointer(2)
	segment.DeNovoQScore = floatPointer(12.346)
	columns = FormatColumns([]*Segment{segment}, true)
	assert.Equal(t, "RC:BC:CN:MCC:DQ\t151.34:100:3:2:12.35", columns)

	segment.DeNovoQScore = nil
	columns = FormatColumns([]*Segment{segment}, true)
	assert.Equal(t, "RC:BC:CN:MCC:DQ\t151.34:100:3:2:.", columns)
}

func TestFormatColumnsMultiSample(t *testing.T) {
	first := gainSegment()
	second := gainSegment()
	second.CopyNumber = 2
	second.MajorChromosomeCount = intPointer(2)
	second.MajorChromosomeCountScore = floatPointer(45.1)
	second.MedianCount = 99.996

	columns := strings.Split(FormatColumns([]*Segment{first, second}, false), "\t")
	assert.Equal(t, []string{
		"RC:BC:CN:MCC:MCCQ:QS",
		"151.34:100:3:.:.:30.50",
		"100.00:100:2:2:45.10:30.50",
	}, columns)

	for _, block := range columns[1:] {
		assert.Len(t, strings.Split(block, ":"), 6)
	}

	withDeNovo := strings.Split(FormatColumns([]*Segment{first, second}, true), "\t")
	assert.Equal(t, "RC:BC:CN:MCC:MCCQ:QS:DQ", withDeNovo[0])
	for _, block := range withDeNovo[1:] {
		tokens := strings.Split(block, ":")
		assert.Len(t, tokens, 7)
		assert.Equal(t, ".", tokens[6])
	}
}

func TestFormatColumnsPrefersMedianCount(t *testing.T) {
	segment := gainSegment()
	segment.MedianCount = 140.0

	columns := FormatColumns([]*Segment{segment}, false)
	assert.Equal(t, "RC:BC:CN:MCC\t140.00:100:3:.", columns)
}
