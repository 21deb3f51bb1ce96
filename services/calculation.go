package services

import (
	"math"

	"paperrate/entries"
)

// CalcInput carries the inputs of the paper cost formula.
type CalcInput struct {
	TotalPaper int
	CutDivisor int
	PaperRate  float64
	RimSize    int
	Printing   float64
	Binding    float64
}

// CalcResult carries the derived fields.
type CalcResult struct {
	ReqPaper    float64
	TotalAmount float64
	FinalTotal  float64
}

// Calculate derives required paper, total amount and final total.
// RimSize and CutDivisor must be at least 1.
func Calculate(in CalcInput) CalcResult {
	reqPaper := float64(in.TotalPaper) * (1 / float64(in.CutDivisor))
	totalAmount := (in.PaperRate / float64(in.RimSize)) * reqPaper
	return CalcResult{
		ReqPaper:    reqPaper,
		TotalAmount: totalAmount,
		FinalTotal:  totalAmount + in.Printing + in.Binding,
	}
}

// EntryInput is a submitted form before derivation.
// Field tags are the form field names.
type EntryInput struct {
	ID         string  `json:"entry_id"`
	PaperType  string  `json:"paper_type"`
	PaperSize  string  `json:"paper_size"`
	GSM        int     `json:"paper_gsm"`
	PaperRate  float64 `json:"paper_rate"`
	CutSize    string  `json:"paper_cut"`
	RimSize    int     `json:"rim_size"`
	Billbook   string  `json:"billbook"`
	TotalPaper int     `json:"total_paper"`
	Printing   float64 `json:"printing"`
	Binding    float64 `json:"binding"`
}

// BuildEntry validates the input, derives the calculated fields and returns
// the entry to store. Derived values are rounded to two decimals.
func BuildEntry(in EntryInput) (entries.PaperEntry, error) {
	if err := ValidateEntryInput(in); err != nil {
		return entries.PaperEntry{}, err
	}
	cut, err := LookupCutSize(in.CutSize)
	if err != nil {
		return entries.PaperEntry{}, err
	}

	res := Calculate(CalcInput{
		TotalPaper: in.TotalPaper,
		CutDivisor: cut.Divisor,
		PaperRate:  in.PaperRate,
		RimSize:    in.RimSize,
		Printing:   in.Printing,
		Binding:    in.Binding,
	})
	res = CalcResult{
		ReqPaper:    Round2(res.ReqPaper),
		TotalAmount: Round2(res.TotalAmount),
		FinalTotal:  Round2(res.FinalTotal),
	}
	if err := validateDerived(res); err != nil {
		return entries.PaperEntry{}, err
	}

	return entries.PaperEntry{
		ID:          in.ID,
		PaperType:   in.PaperType,
		PaperSize:   in.PaperSize,
		GSM:         in.GSM,
		PaperRate:   in.PaperRate,
		CutSize:     cut.Label,
		RimSize:     in.RimSize,
		Billbook:    in.Billbook,
		TotalPaper:  in.TotalPaper,
		ReqPaper:    res.ReqPaper,
		TotalAmount: res.TotalAmount,
		Printing:    in.Printing,
		Binding:     in.Binding,
		FinalTotal:  res.FinalTotal,
	}, nil
}

// InputFromEntry turns a stored entry back into form input for editing.
func InputFromEntry(e entries.PaperEntry) EntryInput {
	return EntryInput{
		ID:         e.ID,
		PaperType:  e.PaperType,
		PaperSize:  e.PaperSize,
		GSM:        e.GSM,
		PaperRate:  e.PaperRate,
		CutSize:    e.CutSize,
		RimSize:    e.RimSize,
		Billbook:   e.Billbook,
		TotalPaper: e.TotalPaper,
		Printing:   e.Printing,
		Binding:    e.Binding,
	}
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Totals sums the derived money columns over a set of entries.
type Totals struct {
	ReqPaper    float64
	TotalAmount float64
	FinalTotal  float64
}

func CalcTotals(list []entries.PaperEntry) Totals {
	var t Totals
	for _, e := range list {
		t.ReqPaper += e.ReqPaper
		t.TotalAmount += e.TotalAmount
		t.FinalTotal += e.FinalTotal
	}
	t.ReqPaper = Round2(t.ReqPaper)
	t.TotalAmount = Round2(t.TotalAmount)
	t.FinalTotal = Round2(t.FinalTotal)
	return t
}
