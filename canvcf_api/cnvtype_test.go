package canvcf_api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPointer(value int) *int {
	return &value
}

func floatPointer(value float64) *float64 {
	return &value
}

func TestElementaryType(t *testing.T) {
	tests := []struct {
		name                string
		copyNumber          int
		majorCount          *int
		referenceCopyNumber int
		want                CnvType
	}{
		{"diploid call on diploid region", 2, nil, 2, Reference},
		{"gain on diploid region", 3, nil, 2, Gain},
		{"loss on diploid region", 1, nil, 2, Loss},
		{"homozygous deletion", 0, nil, 2, Loss},
		{"copy neutral with one parental allele", 2, intPointer(2), 2, LossOfHeterozygosity},
		{"copy neutral with both parental alleles", 2, intPointer(1), 2, Reference},
		{"haploid call on haploid region", 1, nil, 1, Reference},
		{"gain on haploid region", 2, nil, 1, Gain},
		{"major count ignored outside diploid regions", 3, intPointer(3), 3, Reference},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			segment := &Segment{CopyNumber: test.copyNumber, MajorChromosomeCount: test.majorCount}
			assert.Equal(t, test.want, segment.ElementaryType(test.referenceCopyNumber))
		})
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name  string
		types []CnvType
		want  CnvType
	}{
		{"single reference", []CnvType{Reference}, Reference},
		{"single gain", []CnvType{Gain}, Gain},
		{"single loss", []CnvType{Loss}, Loss},
		{"single LOH", []CnvType{LossOfHeterozygosity}, LossOfHeterozygosity},
		{"all reference", []CnvType{Reference, Reference, Reference}, Reference},
		{"reference and loss", []CnvType{Reference, Loss, Reference}, Loss},
		{"reference and gain", []CnvType{Gain, Reference}, Gain},
		{"reference and LOH", []CnvType{Reference, LossOfHeterozygosity}, LossOfHeterozygosity},
		{"gain and loss", []CnvType{Gain, Loss}, ComplexCnv},
		{"gain and LOH", []CnvType{Gain, LossOfHeterozygosity, Reference}, ComplexCnv},
		{"loss and LOH", []CnvType{LossOfHeterozygosity, Loss}, ComplexCnv},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Reconcile(test.types)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestReconcileErrors(t *testing.T) {
	_, err := Reconcile([]CnvType{})
	assert.Error(t, err)

	// A single-sample call never reconciles to ComplexCnv
	_, err = Reconcile([]CnvType{ComplexCnv})
	assert.ErrorContains(t, err, "single sample")
}

func TestAltAllele(t *testing.T) {
	tests := []struct {
		name        string
		cnvType     CnvType
		copyNumber  int
		multisample bool
		want        string
	}{
		{"reference", Reference, 2, false, "."},
		{"single-sample gain", Gain, 3, false, "<CN3>"},
		{"single-sample homozygous loss", Loss, 0, false, "<CN0>"},
		{"single-sample heterozygous loss", Loss, 1, false, "<CNV>"},
		{"single-sample high gain", Gain, 6, false, "<CNV>"},
		{"multisample gain", Gain, 3, true, "<CNV>"},
		{"LOH", LossOfHeterozygosity, 2, false, "<CNV>"},
		{"complex", ComplexCnv, 4, true, "<CNV>"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.cnvType.AltAllele(test.copyNumber, test.multisample))
		})
	}
}

func TestIdTokens(t *testing.T) {
	assert.Equal(t, "REF", Reference.IdToken())
	assert.Equal(t, "GAIN", Gain.IdToken())
	assert.Equal(t, "LOSS", Loss.IdToken())
	assert.Equal(t, "LOH", LossOfHeterozygosity.IdToken())
	assert.Equal(t, "COMPLEXCNV", ComplexCnv.IdToken())

	assert.Equal(t, "", Reference.SvType())
	assert.Equal(t, "GAIN", Gain.SvType())
}
