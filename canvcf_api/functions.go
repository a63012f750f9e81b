package canvcf_api

import (
	"strconv"

	"golang.org/x/text/cases"
)

// foldName case-folds a chromosome name for case-insensitive comparisons.
// A cases.Caser is stateful, so every call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// All scores and averages in the VCF are rendered with two decimals
func floatToString(input float64) string {
	return strconv.FormatFloat(input, 'f', 2, 64)
}

// optionalFloatToString renders an absent score as the VCF missing value
func optionalFloatToString(input *float64) string {
	if input == nil {
		return "."
	}
	return floatToString(*input)
}

// optionalIntToString renders an absent count as the VCF missing value
func optionalIntToString(input *int) string {
	if input == nil {
		return "."
	}
	return strconv.Itoa(*input)
}

// readCount returns the RC value of a segment, preferring the median
// read count over the mean when one was computed
func readCount(segment *Segment) float64 {
	if segment.MedianCount > 0 {
		return segment.MedianCount
	}
	return segment.MeanCount
}
