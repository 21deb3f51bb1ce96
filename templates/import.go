package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ImportPage is the full bulk import page.
func ImportPage(data ImportPageData) templ.Component {
	return Page("Import Entries", ImportContent(data))
}

// ImportContent renders the upload form and, after an upload, its outcome.
func ImportContent(data ImportPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<div id="import-content"><h1>Import Entries</h1>`)
		h.raw(`<p>Upload a .csv or .xlsx file whose header row uses the report column names. `)
		h.raw(`Req Paper, Total Amount and Final Total are always recalculated. `)
		h.raw(`<a href="/entries/import/template">Download template</a></p>`)
		h.raw(`<form method="post" action="/entries/import" enctype="multipart/form-data" `)
		h.raw(`hx-post="/entries/import" hx-encoding="multipart/form-data" hx-target="#import-content" hx-swap="outerHTML">`)
		h.raw(`<input type="file" name="file" accept=".csv,.xlsx" required> <button type="submit">Upload</button></form>`)

		if data.Message != "" {
			h.raw(`<p class="import-message">`)
			h.text(data.Message)
			h.raw(`</p>`)
		}

		if data.FileName != "" {
			h.raw(`<p class="import-summary">`)
			h.text(data.FileName)
			h.rawf(`: %d rows, %d imported, %d with errors</p>`, data.TotalRows, data.Imported, data.ErrorRows)
		}

		if len(data.Errors) > 0 {
			h.raw(`<table class="import-errors"><thead><tr><th>Row #</th><th>Field</th><th>Error</th></tr></thead><tbody>`)
			for _, e := range data.Errors {
				h.rawf(`<tr><td>%d</td><td>`, e.Row)
				h.text(e.Field)
				h.raw(`</td><td>`)
				h.text(e.Message)
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}

		h.raw(`<p><a href="/entries">Back to entries</a></p></div>`)
		return h.err
	})
}
