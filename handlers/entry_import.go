package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"paperrate/services"
	"paperrate/templates"
)

const maxImportSize = 10 << 20

// HandleImportPage renders the upload form.
func HandleImportPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderImport(e, templates.ImportPageData{})
	}
}

// HandleImportUpload parses an uploaded file and appends its entries. The
// import is all-or-nothing: any row error leaves the table untouched.
func HandleImportUpload() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}

		if err := e.Request.ParseMultipartForm(maxImportSize); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid upload")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			SetToast(e, "warning", "Choose a file to import")
			return renderImport(e, templates.ImportPageData{Message: "No file was uploaded."})
		}
		defer file.Close()

		result, err := services.ParseImportFile(file, header.Filename)
		if err != nil {
			log.Printf("entry_import: %s: %v", header.Filename, err)
			SetToast(e, "warning", "Could not read the file")
			return renderImport(e, templates.ImportPageData{FileName: header.Filename, Message: err.Error()})
		}

		data := templates.ImportPageData{
			FileName:  result.FileName,
			TotalRows: result.TotalRows,
			ErrorRows: result.ErrorRows(),
		}
		for _, ie := range result.Errors {
			data.Errors = append(data.Errors, templates.ImportError{Row: ie.Row, Field: ie.Field, Message: ie.Message})
		}

		if len(result.Errors) > 0 {
			data.Message = "Nothing was imported. Fix the rows below and upload again."
			SetToast(e, "warning", fmt.Sprintf("%d rows have errors", data.ErrorRows))
			return renderImport(e, data)
		}

		for _, entry := range result.Entries {
			session.Entries.Append(entry)
		}
		data.Imported = len(result.Entries)
		log.Printf("entry_import: session %s imported %d entries from %s", session.ID, data.Imported, result.FileName)

		SetToast(e, "success", fmt.Sprintf("Imported %d entries", data.Imported))
		return renderImport(e, data)
	}
}

// HandleImportTemplate downloads a blank import workbook.
func HandleImportTemplate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("import_template: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", `attachment; filename="Paper_Entries_Template.xlsx"`)
		_, err = e.Response.Write(xlsxBytes)
		return err
	}
}

func renderImport(e *core.RequestEvent, data templates.ImportPageData) error {
	var component templ.Component
	if isHTMX(e) {
		component = templates.ImportContent(data)
	} else {
		component = templates.ImportPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}
