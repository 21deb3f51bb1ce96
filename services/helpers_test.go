package services

import (
	"bytes"
	"time"

	"paperrate/entries"
)

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// sampleEntries returns n derived entries that differ by paper type.
func sampleEntries(n int) []entries.PaperEntry {
	out := make([]entries.PaperEntry, 0, n)
	for i := 0; i < n; i++ {
		e, err := BuildEntry(EntryInput{
			PaperType:  "Maplitho " + string(rune('A'+i%26)),
			PaperSize:  "23x36",
			GSM:        70,
			PaperRate:  500,
			CutSize:    DefaultCutSize,
			RimSize:    500,
			Billbook:   "Bill Book",
			TotalPaper: 1000,
			Printing:   200,
			Binding:    100,
		})
		if err != nil {
			panic(err)
		}
		out = append(out, e)
	}
	return out
}

var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
