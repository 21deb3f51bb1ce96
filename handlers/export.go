package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pocketbase/pocketbase/core"

	"paperrate/config"
	"paperrate/services"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// HandleExportPDF downloads the session's entries as the PDF report.
func HandleExportPDF(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return exportReport(e, cfg, "export_pdf", services.GeneratePDF, services.ReportFilename, pdfContentType)
	}
}

// HandleExportExcel downloads the session's entries as a spreadsheet.
func HandleExportExcel(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filename := strings.TrimSuffix(services.ReportFilename, ".pdf") + ".xlsx"
		return exportReport(e, cfg, "export_excel", services.GenerateExcel, filename, xlsxContentType)
	}
}

// exportReport runs a generator over the session's entries. An empty table
// is not an error: the user gets an informational toast and no document.
func exportReport(
	e *core.RequestEvent,
	cfg config.Config,
	component string,
	generate func(services.ReportData) ([]byte, error),
	filename string,
	contentType string,
) error {
	session, err := requireSession(e)
	if session == nil {
		return err
	}

	data := services.BuildReportData(cfg.ReportTitle, session.Entries.List(), time.Now())

	doc, err := generate(data)
	if errors.Is(err, services.ErrNoEntries) {
		return noDataResponse(e, contentType)
	}
	if err != nil {
		log.Printf("%s: failed to generate: %v", component, err)
		return ErrorToast(e, http.StatusInternalServerError, "Failed to generate report")
	}

	log.Printf("%s: session %s, %d entries, %s", component, session.ID, len(data.Rows), humanize.Bytes(uint64(len(doc))))

	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err = e.Response.Write(doc)
	return err
}

func noDataResponse(e *core.RequestEvent, contentType string) error {
	kind := "PDF"
	if contentType == xlsxContentType {
		kind = "Excel file"
	}
	message := fmt.Sprintf("No data to generate %s.", kind)

	SetToast(e, "info", message)
	if isHTMX(e) {
		e.Response.Header().Set("HX-Reswap", "none")
		return e.String(http.StatusOK, message)
	}
	return e.Redirect(http.StatusFound, "/entries")
}
