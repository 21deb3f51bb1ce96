package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// reportColumnWidths are grid units per column of the entry report; they
// sum to reportGridSize.
var reportColumnWidths = []int{2, 2, 1, 2, 2, 1, 2, 1, 1, 2, 1, 1, 2}

const reportGridSize = 20

var (
	gridBorderColor = &props.Color{Red: 0, Green: 0, Blue: 0}
	headerBg        = &props.Color{Red: 128, Green: 128, Blue: 128}
	bandLight       = &props.Color{Red: 245, Green: 245, Blue: 245}
	bandDark        = &props.Color{Red: 211, Green: 211, Blue: 211}
)

// GeneratePDF renders the report as a landscape A4 table. The title and
// column header are registered as the page header so they repeat on every
// page. It returns ErrNoEntries when there are no rows.
func GeneratePDF(data ReportData) ([]byte, error) {
	if len(data.Rows) == 0 {
		return nil, ErrNoEntries
	}

	widths, gridSize := columnWidths(len(data.Columns))

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterHeader(titleRow(data.Title, gridSize), row.New(3), tableHeaderRow(data.Columns, widths)); err != nil {
		return nil, fmt.Errorf("failed to register report header: %w", err)
	}

	for i, r := range data.Rows {
		m.AddRows(tableBodyRow(r, widths, i))
	}

	addFooter(m, data, gridSize)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// columnWidths returns per-column grid widths. Any column set other than
// the entry report's gets equal widths.
func columnWidths(n int) ([]int, int) {
	if n == len(reportColumnWidths) {
		return reportColumnWidths, reportGridSize
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = 1
	}
	if n == 0 {
		return widths, 1
	}
	return widths, n
}

func titleRow(title string, gridSize int) core.Row {
	return row.New(12).Add(
		text.NewCol(gridSize, title, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
}

func tableHeaderRow(columns []string, widths []int) core.Row {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Top:   1.5,
		Color: &props.Color{Red: 245, Green: 245, Blue: 245},
	}
	headerCell := &props.Cell{
		BackgroundColor: headerBg,
		BorderType:      border.Full,
		BorderColor:     gridBorderColor,
		BorderThickness: 0.2,
	}

	cols := make([]core.Col, len(columns))
	for i, label := range columns {
		cols[i] = col.New(widths[i]).Add(text.New(label, headerText)).WithStyle(headerCell)
	}
	return row.New(10).Add(cols...)
}

// tableBodyRow renders one record, banding alternate rows.
func tableBodyRow(values []any, widths []int, index int) core.Row {
	bg := bandLight
	if index%2 == 1 {
		bg = bandDark
	}
	cell := &props.Cell{
		BackgroundColor: bg,
		BorderType:      border.Full,
		BorderColor:     gridBorderColor,
		BorderThickness: 0.2,
	}
	cellText := props.Text{
		Size:  7,
		Align: align.Center,
		Top:   1.5,
	}

	cols := make([]core.Col, len(widths))
	for i := range widths {
		var v any
		if i < len(values) {
			v = values[i]
		}
		cols[i] = col.New(widths[i]).Add(text.New(FormatValue(v), cellText)).WithStyle(cell)
	}
	return row.New(7).Add(cols...)
}

// addFooter adds the grand total and the generated-date line after the table.
func addFooter(m core.Maroto, data ReportData, gridSize int) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			text.NewCol(gridSize, fmt.Sprintf("Grand total %s (%s)", FormatINR(data.Totals.FinalTotal), AmountInWords(data.Totals.FinalTotal)), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
	)
	m.AddRows(
		row.New(6).Add(
			text.NewCol(gridSize, fmt.Sprintf("Generated on %s, %d entries", data.GeneratedAt, len(data.Rows)), props.Text{
				Size:  7,
				Align: align.Left,
				Color: &props.Color{Red: 140, Green: 140, Blue: 140},
			}),
		),
	)
}
