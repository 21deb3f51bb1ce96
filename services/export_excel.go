package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	excelSheetName    = "Paper Evaluation"
	excelHeaderRow    = 3
	excelFirstDataRow = excelHeaderRow + 1
)

// GenerateExcel writes the report to an xlsx workbook: a merged title row,
// a styled and frozen column header, then one banded row per entry.
// Numbers stay numeric. It returns ErrNoEntries when there are no rows.
func GenerateExcel(data ReportData) ([]byte, error) {
	if len(data.Rows) == 0 {
		return nil, ErrNoEntries
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, excelSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := excelSheetName

	lastCol, err := excelize.ColumnNumberToName(len(data.Columns))
	if err != nil {
		return nil, fmt.Errorf("last column: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", lastCol, 14); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#F5F5F5",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#808080"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bandStyles := make([]int, 2)
	for i, fill := range []string{"#F5F5F5", "#D3D3D3"} {
		bandStyles[i], err = f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Size: 10},
			Fill: excelize.Fill{
				Type:    "pattern",
				Color:   []string{fill},
				Pattern: 1,
			},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    thinBorders(),
		})
		if err != nil {
			return nil, fmt.Errorf("create band style: %w", err)
		}
	}

	// ── Title ───────────────────────────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)

	// ── Column headers ──────────────────────────────────────────────────

	for i, h := range data.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, excelHeaderRow)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", excelHeaderRow), fmt.Sprintf("%s%d", lastCol, excelHeaderRow), headerStyle)

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      excelHeaderRow,
		TopLeftCell: fmt.Sprintf("A%d", excelFirstDataRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	// ── Data rows ───────────────────────────────────────────────────────

	for i, values := range data.Rows {
		rowNum := excelFirstDataRow + i
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if s, ok := v.(string); ok {
				v = sanitizeExcelCell(s)
			}
			f.SetCellValue(sheet, cell, v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), bandStyles[i%2])
	}

	// ── Totals ──────────────────────────────────────────────────────────

	totalsRow := excelFirstDataRow + len(data.Rows)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalsRow), "Totals")
	for col, v := range totalColumns(data) {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, totalsRow), v)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalsRow), fmt.Sprintf("%s%d", lastCol, totalsRow), headerStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// totalColumns places the summed derived fields under their headers.
func totalColumns(data ReportData) map[string]float64 {
	out := make(map[string]float64)
	for i, c := range data.Columns {
		var v float64
		switch c {
		case "Req Paper":
			v = data.Totals.ReqPaper
		case "Total Amount":
			v = data.Totals.TotalAmount
		case "Final Total":
			v = data.Totals.FinalTotal
		default:
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		out[name] = v
	}
	return out
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
