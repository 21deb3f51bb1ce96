package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// EntriesPage is the full page for GET /entries.
func EntriesPage(data EntriesPageData) templ.Component {
	return Page(data.ReportTitle, EntriesContent(data))
}

// EntriesContent is the swappable body of the entries page.
func EntriesContent(data EntriesPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="entries-content"><h1>`)
		h.text(data.ReportTitle)
		h.raw(`</h1>`)
		if h.err != nil {
			return h.err
		}
		if err := EntryForm(data.Form).Render(ctx, w); err != nil {
			return err
		}
		if err := EntryTable(data.List).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</div>`)
		return h.err
	})
}

type formField struct {
	name  string
	label string
	kind  string
	value string
	min   string
	step  string
}

// EntryForm renders the add/update form with per-field errors.
func EntryForm(data EntryFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<form id="entry-form" method="post" action="`)
		h.text(data.Action())
		h.raw(`" hx-post="`)
		h.text(data.Action())
		h.raw(`" hx-target="#entries-content" hx-swap="outerHTML">`)
		if data.IsEdit {
			h.raw(`<input type="hidden" name="entry_id" value="`)
			h.text(data.EntryID)
			h.raw(`">`)
		}
		if msg := data.Errors["_form"]; msg != "" {
			h.raw(`<p class="field-error">`)
			h.text(msg)
			h.raw(`</p>`)
		}

		h.raw(`<fieldset hx-post="/entries/calculate" hx-trigger="change" hx-target="#calc-preview" hx-include="#entry-form">`)

		left := []formField{
			{"paper_type", "Paper Type", "text", data.PaperType, "", ""},
			{"paper_size", "Paper Size", "text", data.PaperSize, "", ""},
			{"paper_gsm", "Paper GSM", "number", data.GSM, "0", "1"},
			{"paper_rate", "Paper Rate (₹)", "number", data.PaperRate, "0", "0.01"},
		}
		middle := []formField{
			{"rim_size", "Rim Size (sheets/rim)", "number", data.RimSize, "1", "1"},
			{"billbook", "Billbook/Register/Pad", "text", data.Billbook, "", ""},
			{"total_paper", "Total Paper", "number", data.TotalPaper, "0", "1"},
		}
		right := []formField{
			{"printing", "Printing (₹)", "number", data.Printing, "0", "0.01"},
			{"binding", "Binding (₹)", "number", data.Binding, "0", "0.01"},
		}

		h.raw(`<div>`)
		for _, f := range left {
			writeField(h, f, data.Errors[f.name])
		}
		h.raw(`</div><div>`)
		writeCutSelect(h, data)
		for _, f := range middle {
			writeField(h, f, data.Errors[f.name])
		}
		h.raw(`</div><div>`)
		for _, f := range right {
			writeField(h, f, data.Errors[f.name])
		}
		h.raw(`<div id="calc-preview"></div><button type="submit">`)
		h.text(data.SubmitLabel())
		h.raw(`</button>`)
		if data.IsEdit {
			h.raw(`<a href="/entries">Cancel</a>`)
		}
		h.raw(`</div></fieldset></form>`)
		return h.err
	})
}

func writeField(h *htmlWriter, f formField, errMsg string) {
	h.raw(`<label>`)
	h.text(f.label)
	h.raw(`<input type="`)
	h.raw(f.kind)
	h.raw(`" name="`)
	h.raw(f.name)
	h.raw(`" value="`)
	h.text(f.value)
	h.raw(`"`)
	if f.min != "" {
		h.rawf(` min="%s"`, f.min)
	}
	if f.step != "" {
		h.rawf(` step="%s"`, f.step)
	}
	h.raw(`>`)
	writeFieldError(h, errMsg)
	h.raw(`</label>`)
}

func writeCutSelect(h *htmlWriter, data EntryFormData) {
	h.raw(`<label>Paper Cut Size<select name="paper_cut">`)
	for _, opt := range data.CutOptions {
		h.raw(`<option value="`)
		h.text(opt)
		h.raw(`"`)
		if opt == data.CutSize {
			h.raw(` selected`)
		}
		h.raw(`>`)
		h.text(opt)
		h.raw(`</option>`)
	}
	h.raw(`</select>`)
	writeFieldError(h, data.Errors["paper_cut"])
	h.raw(`</label>`)
}

func writeFieldError(h *htmlWriter, msg string) {
	if msg == "" {
		return
	}
	h.raw(`<span class="field-error">`)
	h.text(msg)
	h.raw(`</span>`)
}

// EntryTable renders every entry with per-row Edit/Delete actions, the
// totals row and the export links.
func EntryTable(data EntryListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<section id="entries-table"><h2>Entries</h2>`)
		if len(data.Rows) == 0 {
			h.raw(`<p class="empty-state">No entries yet. Add one with the form above or <a href="/entries/import">import a file</a>.</p></section>`)
			return h.err
		}

		h.raw(`<table><thead><tr><th>#</th>`)
		for _, c := range data.Columns {
			h.raw(`<th>`)
			h.text(c)
			h.raw(`</th>`)
		}
		h.raw(`<th></th><th></th></tr></thead><tbody>`)

		for _, r := range data.Rows {
			if r.Index == data.EditingIndex {
				h.raw(`<tr class="editing"`)
			} else {
				h.raw(`<tr`)
			}
			h.raw(` data-entry-id="`)
			h.text(r.ID)
			h.rawf(`"><td>%d</td>`, r.Index+1)
			for _, cell := range r.Cells {
				h.raw(`<td>`)
				h.text(cell)
				h.raw(`</td>`)
			}
			path := entryPath(r.Index)
			h.rawf(`<td><a href="%s/edit" hx-get="%s/edit" hx-target="#entries-content" hx-swap="outerHTML" hx-push-url="true">Edit</a></td>`, path, path)
			h.rawf(`<td><button hx-delete="%s" hx-confirm="Delete this entry?">Delete</button></td></tr>`, path)
		}

		h.rawf(`</tbody><tfoot><tr><th colspan="%d">Totals</th>`, 9)
		h.raw(`<th>`)
		h.text(data.TotalReqPaper)
		h.raw(`</th><th>`)
		h.text(data.TotalAmount)
		h.raw(`</th><th colspan="2"></th><th>`)
		h.text(data.TotalFinal)
		h.raw(`</th><th colspan="2"></th></tr></tfoot></table>`)

		h.raw(`<div class="actions">`)
		h.raw(`<a href="/entries/export/pdf">Download PDF</a>`)
		h.raw(`<a href="/entries/export/excel">Download Excel</a>`)
		h.raw(`<a href="/entries/import">Import</a>`)
		h.raw(`<button hx-delete="/entries" hx-confirm="Remove every entry?">Clear all</button>`)
		h.raw(`</div></section>`)
		return h.err
	})
}

// CalcPreview is the live derived-field preview fragment.
func CalcPreview(data CalcPreviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		if data.Error != "" {
			h.raw(`<p class="field-error">`)
			h.text(data.Error)
			h.raw(`</p>`)
			return h.err
		}
		h.raw(`<dl class="calc-preview"><dt>Req Paper</dt><dd>`)
		h.text(data.ReqPaper)
		h.raw(`</dd><dt>Total Amount</dt><dd>`)
		h.text(data.TotalAmount)
		h.raw(`</dd><dt>Final Total</dt><dd>`)
		h.text(data.FinalTotal)
		h.raw(`</dd></dl>`)
		return h.err
	})
}
