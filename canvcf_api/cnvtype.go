package canvcf_api

import (
	"fmt"
)

// The type of a copy-number variant once per-sample calls have been
// reconciled into one VCF record
type CnvType int

const (
	// The call matches the expected copy number
	Reference CnvType = iota

	// The call has more copies than expected
	Gain

	// The call has fewer copies than expected
	Loss

	// The call is copy neutral but lost one parental allele
	LossOfHeterozygosity

	// The samples disagree in a way no single type can represent.
	// Only valid when reconciling two or more samples.
	ComplexCnv
)

// IdToken returns the short token used in the synthetic variant ID.
func (cnvType CnvType) IdToken() string {
	switch cnvType {
	case Reference:
		return "REF"
	case Gain:
		return "GAIN"
	case Loss:
		return "LOSS"
	case LossOfHeterozygosity:
		return "LOH"
	default:
		return "COMPLEXCNV"
	}
}

// SvType returns the INFO/SVTYPE value of the type. Reference records
// carry no SVTYPE and return the empty string.
func (cnvType CnvType) SvType() string {
	if cnvType == Reference {
		return ""
	}
	return cnvType.IdToken()
}

// AltAllele returns the ALT column encoding of the type. Gains and
// losses with an unambiguous copy number between 0 and 5 use the
// per-copy-number symbolic allele (CN1 is the reference allele itself
// and is never symbolic); everything else variant uses <CNV>.
// multisample runs always use <CNV> because the samples may disagree
// on the copy number.
func (cnvType CnvType) AltAllele(copyNumber int, multisample bool) string {
	switch cnvType {
	case Reference:
		return "."
	case Gain, Loss:
		if !multisample && copyNumber >= 0 && copyNumber <= 5 && copyNumber != 1 {
			return fmt.Sprintf("<CN%d>", copyNumber)
		}
		return "<CNV>"
	default:
		return "<CNV>"
	}
}

// ElementaryType classifies one sample's call against that sample's
// expected copy number. A copy-neutral call whose major chromosome
// count equals the copy number lost one parental allele.
func (segment *Segment) ElementaryType(referenceCopyNumber int) CnvType {
	if segment.CopyNumber < referenceCopyNumber {
		return Loss
	}
	if segment.CopyNumber > referenceCopyNumber {
		return Gain
	}
	mcc := segment.MajorChromosomeCount
	if referenceCopyNumber == 2 && mcc != nil && *mcc == segment.CopyNumber {
		return LossOfHeterozygosity
	}
	return Reference
}

// Reconcile collapses the per-sample elementary types of one genomic
// interval into the single type the shared VCF record will carry.
// Samples calling the reference never override a variant call; mixing
// incompatible variant calls across samples yields ComplexCnv.
func Reconcile(elementaryTypes []CnvType) (CnvType, error) {
	if len(elementaryTypes) == 0 {
		return Reference, fmt.Errorf("cannot reconcile an empty set of CNV calls")
	}

	allIn := func(allowed ...CnvType) bool {
		for _, elementary := range elementaryTypes {
			found := false
			for _, candidate := range allowed {
				if elementary == candidate {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	// First match wins
	switch {
	case allIn(Reference):
		return Reference, nil
	case allIn(Reference, Loss):
		return Loss, nil
	case allIn(Reference, Gain):
		return Gain, nil
	case allIn(Reference, LossOfHeterozygosity):
		return LossOfHeterozygosity, nil
	case len(elementaryTypes) == 1:
		return Reference, fmt.Errorf("invalid elementary CNV type %q for a single sample", elementaryTypes[0].IdToken())
	default:
		return ComplexCnv, nil
	}
}
