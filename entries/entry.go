// Package entries holds the paper-cost records of a session and the
// ordered store that keeps them.
package entries

// PaperEntry is one paper-stock cost calculation. ReqPaper, TotalAmount and
// FinalTotal are derived at submission time and stored as-is; nothing
// recomputes them later.
type PaperEntry struct {
	ID          string
	PaperType   string
	PaperSize   string
	GSM         int
	PaperRate   float64
	CutSize     string
	RimSize     int
	Billbook    string
	TotalPaper  int
	ReqPaper    float64
	TotalAmount float64
	Printing    float64
	Binding     float64
	FinalTotal  float64
}

// Columns lists the report column labels in display order.
var Columns = []string{
	"Paper Type",
	"Paper Size",
	"Paper GSM",
	"Paper Rate",
	"Paper Cut Size",
	"Rim Size",
	"Billbook",
	"Total Paper",
	"Req Paper",
	"Total Amount",
	"Printing",
	"Binding",
	"Final Total",
}
