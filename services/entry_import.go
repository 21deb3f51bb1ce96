package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"paperrate/entries"
)

// ImportColumns are the input columns an import file may carry. Derived
// columns (Req Paper, Total Amount, Final Total) are ignored if present.
var ImportColumns = []string{
	"Paper Type",
	"Paper Size",
	"Paper GSM",
	"Paper Rate",
	"Paper Cut Size",
	"Rim Size",
	"Billbook",
	"Total Paper",
	"Printing",
	"Binding",
}

// ImportError is a single field-level problem on one file row.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded file.
type ImportResult struct {
	FileName  string
	TotalRows int
	Entries   []entries.PaperEntry
	Errors    []ImportError
}

// ErrorRows counts the distinct rows that have at least one error.
func (r ImportResult) ErrorRows() int {
	rows := make(map[int]bool)
	for _, e := range r.Errors {
		rows[e.Row] = true
	}
	return len(rows)
}

// ParseImportFile reads a .csv or .xlsx upload and builds an entry for every
// valid row. Rows with no recognised values are skipped and not counted.
// Numbers that do not parse become zero; range problems and unknown cut
// sizes are reported per row.
func ParseImportFile(file io.Reader, fileName string) (ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return ImportResult{}, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return ImportResult{}, err
	}

	columnLabels, recognised := mapImportHeaders(headers)
	if recognised == 0 {
		return ImportResult{}, fmt.Errorf("no recognised columns; expected headers like %q", ImportColumns[0])
	}

	result := ImportResult{FileName: fileName}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		values := make(map[string]string)
		for colIdx, label := range columnLabels {
			if label == "" || colIdx >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[colIdx]); v != "" {
				values[label] = v
			}
		}
		if len(values) == 0 {
			continue
		}
		result.TotalRows++

		in := EntryInput{
			PaperType:  values["Paper Type"],
			PaperSize:  values["Paper Size"],
			GSM:        CoerceInt(values["Paper GSM"]),
			PaperRate:  CoerceFloat(values["Paper Rate"]),
			CutSize:    values["Paper Cut Size"],
			RimSize:    CoerceInt(values["Rim Size"]),
			Billbook:   values["Billbook"],
			TotalPaper: CoerceInt(values["Total Paper"]),
			Printing:   CoerceFloat(values["Printing"]),
			Binding:    CoerceFloat(values["Binding"]),
		}
		if in.CutSize == "" {
			in.CutSize = DefaultCutSize
		}

		entry, err := BuildEntry(in)
		if err != nil {
			result.Errors = append(result.Errors, rowErrors(rowNum, err)...)
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// rowErrors converts a BuildEntry failure into sorted per-field errors.
func rowErrors(rowNum int, err error) []ImportError {
	fields := FieldErrors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ImportError, 0, len(keys))
	for _, k := range keys {
		out = append(out, ImportError{Row: rowNum, Field: fieldLabel(k), Message: fields[k]})
	}
	return out
}

var fieldLabels = map[string]string{
	"paper_gsm":   "Paper GSM",
	"paper_rate":  "Paper Rate",
	"paper_cut":   "Paper Cut Size",
	"rim_size":    "Rim Size",
	"total_paper": "Total Paper",
	"printing":    "Printing",
	"binding":     "Binding",
}

func fieldLabel(key string) string {
	if label, ok := fieldLabels[key]; ok {
		return label
	}
	return key
}

// mapImportHeaders maps each file column to an ImportColumns label, or ""
// for columns that are ignored.
func mapImportHeaders(headers []string) ([]string, int) {
	known := make(map[string]string, len(ImportColumns))
	for _, label := range ImportColumns {
		known[strings.ToLower(label)] = label
	}

	mapped := make([]string, len(headers))
	recognised := 0
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))
		if label, ok := known[norm]; ok {
			mapped[i] = label
			recognised++
		}
	}
	return mapped, recognised
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, errors.New("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, errors.New("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// GenerateImportTemplate creates a blank .xlsx with the import headers, a
// cut-size dropdown and a frozen header row.
func GenerateImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Entries"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#808080"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, label := range ImportColumns {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		cell := colName + "1"
		f.SetCellValue(sheetName, cell, label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, colName, colName, 16)

		if label == "Paper Cut Size" {
			dv := excelize.NewDataValidation(true)
			dv.Sqref = fmt.Sprintf("%s2:%s1048576", colName, colName)
			if err := dv.SetDropList(CutSizeLabels()); err != nil {
				return nil, fmt.Errorf("cut size drop list: %w", err)
			}
			if err := f.AddDataValidation(sheetName, dv); err != nil {
				return nil, fmt.Errorf("add cut size validation: %w", err)
			}
		}
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write import template: %w", err)
	}
	return buf.Bytes(), nil
}
