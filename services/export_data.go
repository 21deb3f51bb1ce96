package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"paperrate/entries"
)

// ErrNoEntries is returned when a report is requested for an empty table.
var ErrNoEntries = errors.New("no entries to export")

// DefaultReportTitle is used when no title is configured.
const DefaultReportTitle = "Total Paper Evaluation Report"

// ReportFilename is the download name of the PDF report; the spreadsheet
// uses the same stem.
const ReportFilename = "Total_Paper_Evaluation_Report.pdf"

// ReportData holds everything an exporter needs.
type ReportData struct {
	Title       string
	Columns     []string
	Rows        [][]any // one slice per entry, in Columns order
	Totals      Totals
	GeneratedAt string
}

// BuildReportData snapshots the entries into report rows.
func BuildReportData(title string, list []entries.PaperEntry, now time.Time) ReportData {
	if title == "" {
		title = DefaultReportTitle
	}
	rows := make([][]any, 0, len(list))
	for _, e := range list {
		rows = append(rows, EntryCells(e))
	}
	return ReportData{
		Title:       title,
		Columns:     entries.Columns,
		Rows:        rows,
		Totals:      CalcTotals(list),
		GeneratedAt: now.Format("02 Jan 2006 15:04"),
	}
}

// EntryCells returns the entry's values in entries.Columns order.
func EntryCells(e entries.PaperEntry) []any {
	return []any{
		e.PaperType,
		e.PaperSize,
		e.GSM,
		e.PaperRate,
		e.CutSize,
		e.RimSize,
		e.Billbook,
		e.TotalPaper,
		e.ReqPaper,
		e.TotalAmount,
		e.Printing,
		e.Binding,
		e.FinalTotal,
	}
}

// FormatValue renders a cell value as-is: strings unchanged, integers in
// base 10, floats with the shortest exact representation.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
