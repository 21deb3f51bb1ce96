package services

import (
	"errors"
	"fmt"
)

// ErrUnknownCutSize is returned for a cut label outside CutSizeOptions.
var ErrUnknownCutSize = errors.New("unknown cut size")

// CutSize maps a cut label to the number of pieces a full sheet yields.
type CutSize struct {
	Label   string
	Divisor int
}

// CutSizeOptions is the fixed, ordered list of cut sizes offered by the form.
var CutSizeOptions = []CutSize{
	{"Full Sheet (1)", 1},
	{"Half (1/2)", 2},
	{"A4 (1/4)", 4},
	{"A5 (1/5)", 5},
	{"A6 (1/6)", 6},
	{"A8 (1/8)", 8},
	{"A10 (1/10)", 10},
	{"A12 (1/12)", 12},
}

// DefaultCutSize is preselected on a blank form.
const DefaultCutSize = "A4 (1/4)"

// LookupCutSize resolves a cut label to its CutSize.
func LookupCutSize(label string) (CutSize, error) {
	for _, c := range CutSizeOptions {
		if c.Label == label {
			return c, nil
		}
	}
	return CutSize{}, fmt.Errorf("%w: %q", ErrUnknownCutSize, label)
}

// CutSizeLabels returns the labels of CutSizeOptions in order.
func CutSizeLabels() []string {
	labels := make([]string, len(CutSizeOptions))
	for i, c := range CutSizeOptions {
		labels[i] = c.Label
	}
	return labels
}
