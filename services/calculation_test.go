package services

import (
	"errors"
	"math"
	"testing"

	"paperrate/entries"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCalculate_ReferenceExample(t *testing.T) {
	got := Calculate(CalcInput{
		TotalPaper: 1000,
		CutDivisor: 4,
		PaperRate:  500,
		RimSize:    500,
		Printing:   200,
		Binding:    100,
	})

	if got.ReqPaper != 250 {
		t.Errorf("ReqPaper = %v, want 250", got.ReqPaper)
	}
	if got.TotalAmount != 250 {
		t.Errorf("TotalAmount = %v, want 250", got.TotalAmount)
	}
	if got.FinalTotal != 550 {
		t.Errorf("FinalTotal = %v, want 550", got.FinalTotal)
	}
}

func TestCalculate_EveryCutSize(t *testing.T) {
	for _, cut := range CutSizeOptions {
		t.Run(cut.Label, func(t *testing.T) {
			got := Calculate(CalcInput{TotalPaper: 1200, CutDivisor: cut.Divisor, PaperRate: 600, RimSize: 500})
			want := 1200 * (1 / float64(cut.Divisor))
			if !almostEqual(got.ReqPaper, want) {
				t.Errorf("ReqPaper = %v, want %v", got.ReqPaper, want)
			}
			wantAmount := (600.0 / 500.0) * want
			if !almostEqual(got.TotalAmount, wantAmount) {
				t.Errorf("TotalAmount = %v, want %v", got.TotalAmount, wantAmount)
			}
		})
	}
}

func TestCalculate_FinalTotal(t *testing.T) {
	tests := []struct {
		name     string
		in       CalcInput
		expected float64
	}{
		{"no extras", CalcInput{TotalPaper: 500, CutDivisor: 1, PaperRate: 1000, RimSize: 500}, 1000},
		{"printing only", CalcInput{TotalPaper: 500, CutDivisor: 1, PaperRate: 1000, RimSize: 500, Printing: 150}, 1150},
		{"binding only", CalcInput{TotalPaper: 500, CutDivisor: 2, PaperRate: 1000, RimSize: 500, Binding: 75.5}, 575.5},
		{"zero paper", CalcInput{TotalPaper: 0, CutDivisor: 8, PaperRate: 1000, RimSize: 500, Printing: 10, Binding: 5}, 15},
		{"rim of one", CalcInput{TotalPaper: 10, CutDivisor: 5, PaperRate: 3, RimSize: 1}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.in)
			if !almostEqual(got.FinalTotal, tt.expected) {
				t.Errorf("FinalTotal = %v, want %v", got.FinalTotal, tt.expected)
			}
			if !almostEqual(got.FinalTotal, got.TotalAmount+tt.in.Printing+tt.in.Binding) {
				t.Errorf("FinalTotal %v != TotalAmount %v + extras", got.FinalTotal, got.TotalAmount)
			}
		})
	}
}

func TestBuildEntry_DerivesAndRounds(t *testing.T) {
	entry, err := BuildEntry(EntryInput{
		PaperType:  "Maplitho",
		PaperSize:  "23x36",
		GSM:        70,
		PaperRate:  1000,
		CutSize:    "A6 (1/6)",
		RimSize:    500,
		Billbook:   "Invoice Book",
		TotalPaper: 1000,
		Printing:   120,
		Binding:    30,
	})
	if err != nil {
		t.Fatalf("BuildEntry: %v", err)
	}

	// 1000/6 = 166.666..., amount = 2 * 166.666... = 333.333...
	if entry.ReqPaper != 166.67 {
		t.Errorf("ReqPaper = %v, want 166.67", entry.ReqPaper)
	}
	if entry.TotalAmount != 333.33 {
		t.Errorf("TotalAmount = %v, want 333.33", entry.TotalAmount)
	}
	if entry.FinalTotal != 483.33 {
		t.Errorf("FinalTotal = %v, want 483.33", entry.FinalTotal)
	}
	if entry.CutSize != "A6 (1/6)" || entry.Billbook != "Invoice Book" || entry.GSM != 70 {
		t.Errorf("inputs not carried over: %+v", entry)
	}
}

func TestBuildEntry_LargestAcceptedAmount(t *testing.T) {
	entry, err := BuildEntry(EntryInput{CutSize: "Full Sheet (1)", RimSize: 1, TotalPaper: 1, PaperRate: MaxAmount})
	if err != nil {
		t.Fatalf("BuildEntry error = %v", err)
	}
	if entry.FinalTotal != MaxAmount {
		t.Errorf("FinalTotal = %v, want %v", entry.FinalTotal, MaxAmount)
	}
	if got := FormatINR(entry.FinalTotal); got != "₹1,00,00,00,00,00,00,000.00" {
		t.Errorf("FormatINR = %q", got)
	}
}

func TestBuildEntry_RejectsInvalid(t *testing.T) {
	valid := EntryInput{CutSize: DefaultCutSize, RimSize: 500, TotalPaper: 100, PaperRate: 10}

	tests := []struct {
		name  string
		edit  func(*EntryInput)
		field string
	}{
		{"zero rim", func(in *EntryInput) { in.RimSize = 0 }, "rim_size"},
		{"negative rim", func(in *EntryInput) { in.RimSize = -5 }, "rim_size"},
		{"unknown cut", func(in *EntryInput) { in.CutSize = "A3 (1/3)" }, "paper_cut"},
		{"empty cut", func(in *EntryInput) { in.CutSize = "" }, "paper_cut"},
		{"negative rate", func(in *EntryInput) { in.PaperRate = -1 }, "paper_rate"},
		{"negative paper", func(in *EntryInput) { in.TotalPaper = -1 }, "total_paper"},
		{"negative gsm", func(in *EntryInput) { in.GSM = -70 }, "paper_gsm"},
		{"negative printing", func(in *EntryInput) { in.Printing = -0.5 }, "printing"},
		{"negative binding", func(in *EntryInput) { in.Binding = -2 }, "binding"},
		{"overflowing rate", func(in *EntryInput) { in.PaperRate, in.RimSize = 1e308, 1 }, "paper_rate"},
		{"infinite rate", func(in *EntryInput) { in.PaperRate = math.Inf(1) }, "paper_rate"},
		{"NaN rate", func(in *EntryInput) { in.PaperRate = math.NaN() }, "paper_rate"},
		{"amount above max", func(in *EntryInput) { in.PaperRate = 1e16 }, "paper_rate"},
		{"overflowing costs", func(in *EntryInput) { in.Printing, in.Binding = 1e308, 1e308 }, "printing"},
		{"paper count above max", func(in *EntryInput) { in.TotalPaper = CoerceInt("3000000000") }, "total_paper"},
		{"rim above max", func(in *EntryInput) { in.RimSize = MaxCount + 1 }, "rim_size"},
		{"gsm above max", func(in *EntryInput) { in.GSM = MaxCount + 1 }, "paper_gsm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.edit(&in)
			_, err := BuildEntry(in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			fields := FieldErrors(err)
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("expected error on %q, got %v", tt.field, fields)
			}
		})
	}
}

func TestInputFromEntry_RoundTripsInputs(t *testing.T) {
	original := EntryInput{
		ID: "abc", PaperType: "Art", PaperSize: "A4", GSM: 130, PaperRate: 900,
		CutSize: "Half (1/2)", RimSize: 250, Billbook: "Pad", TotalPaper: 400,
		Printing: 50, Binding: 20,
	}
	entry, err := BuildEntry(original)
	if err != nil {
		t.Fatalf("BuildEntry: %v", err)
	}
	if got := InputFromEntry(entry); got != original {
		t.Errorf("InputFromEntry = %+v, want %+v", got, original)
	}
}

func TestLookupCutSize(t *testing.T) {
	want := map[string]int{
		"Full Sheet (1)": 1, "Half (1/2)": 2, "A4 (1/4)": 4, "A5 (1/5)": 5,
		"A6 (1/6)": 6, "A8 (1/8)": 8, "A10 (1/10)": 10, "A12 (1/12)": 12,
	}
	for label, divisor := range want {
		got, err := LookupCutSize(label)
		if err != nil {
			t.Errorf("LookupCutSize(%q): %v", label, err)
			continue
		}
		if got.Divisor != divisor {
			t.Errorf("LookupCutSize(%q).Divisor = %d, want %d", label, got.Divisor, divisor)
		}
	}

	if _, err := LookupCutSize("Quarter"); !errors.Is(err, ErrUnknownCutSize) {
		t.Errorf("expected ErrUnknownCutSize, got %v", err)
	}
	if len(CutSizeLabels()) != len(want) {
		t.Errorf("CutSizeLabels() has %d labels, want %d", len(CutSizeLabels()), len(want))
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input  float64
		expect float64
	}{
		{0, 0},
		{1.005, 1},
		{0.125, 0.13},
		{166.666666, 166.67},
		{-1.234, -1.23},
	}
	for _, tt := range tests {
		got := Round2(tt.input)
		if !almostEqual(got, tt.expect) {
			t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.expect)
		}
	}
}

func TestCalcTotals(t *testing.T) {
	list := []entries.PaperEntry{
		{ReqPaper: 250, TotalAmount: 250, FinalTotal: 550},
		{ReqPaper: 100.5, TotalAmount: 40.25, FinalTotal: 90.25},
	}
	got := CalcTotals(list)
	if got.ReqPaper != 350.5 || got.TotalAmount != 290.25 || got.FinalTotal != 640.25 {
		t.Errorf("CalcTotals = %+v", got)
	}

	empty := CalcTotals(nil)
	if empty != (Totals{}) {
		t.Errorf("CalcTotals(nil) = %+v, want zero", empty)
	}
}
