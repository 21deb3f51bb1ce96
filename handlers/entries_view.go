package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"paperrate/config"
	"paperrate/entries"
	"paperrate/services"
	"paperrate/templates"
)

// parseIndex reads the {index} path value.
func parseIndex(e *core.RequestEvent) (int, bool) {
	index, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// parseEntryForm reads the submitted form. Numbers go through the
// coercion helpers; the raw strings are kept for redisplay.
func parseEntryForm(r *http.Request) (services.EntryInput, templates.EntryFormData) {
	form := templates.EntryFormData{
		EntryID:    strings.TrimSpace(r.FormValue("entry_id")),
		PaperType:  strings.TrimSpace(r.FormValue("paper_type")),
		PaperSize:  strings.TrimSpace(r.FormValue("paper_size")),
		GSM:        strings.TrimSpace(r.FormValue("paper_gsm")),
		PaperRate:  strings.TrimSpace(r.FormValue("paper_rate")),
		CutSize:    strings.TrimSpace(r.FormValue("paper_cut")),
		RimSize:    strings.TrimSpace(r.FormValue("rim_size")),
		Billbook:   strings.TrimSpace(r.FormValue("billbook")),
		TotalPaper: strings.TrimSpace(r.FormValue("total_paper")),
		Printing:   strings.TrimSpace(r.FormValue("printing")),
		Binding:    strings.TrimSpace(r.FormValue("binding")),
		CutOptions: services.CutSizeLabels(),
		Errors:     make(map[string]string),
	}

	in := services.EntryInput{
		ID:         form.EntryID,
		PaperType:  form.PaperType,
		PaperSize:  form.PaperSize,
		GSM:        services.CoerceInt(form.GSM),
		PaperRate:  services.CoerceFloat(form.PaperRate),
		CutSize:    form.CutSize,
		RimSize:    services.CoerceInt(form.RimSize),
		Billbook:   form.Billbook,
		TotalPaper: services.CoerceInt(form.TotalPaper),
		Printing:   services.CoerceFloat(form.Printing),
		Binding:    services.CoerceFloat(form.Binding),
	}
	return in, form
}

// blankForm is the add form with the widget defaults.
func blankForm() templates.EntryFormData {
	return templates.EntryFormData{
		Index:      -1,
		GSM:        "0",
		PaperRate:  "0",
		CutSize:    services.DefaultCutSize,
		RimSize:    "1",
		TotalPaper: "0",
		Printing:   "0",
		Binding:    "0",
		CutOptions: services.CutSizeLabels(),
		Errors:     make(map[string]string),
	}
}

// editForm prefills the form from a stored entry.
func editForm(index int, entry entries.PaperEntry) templates.EntryFormData {
	in := services.InputFromEntry(entry)
	return templates.EntryFormData{
		Index:      index,
		IsEdit:     true,
		EntryID:    in.ID,
		PaperType:  in.PaperType,
		PaperSize:  in.PaperSize,
		GSM:        strconv.Itoa(in.GSM),
		PaperRate:  services.FormatValue(in.PaperRate),
		CutSize:    in.CutSize,
		RimSize:    strconv.Itoa(in.RimSize),
		Billbook:   in.Billbook,
		TotalPaper: strconv.Itoa(in.TotalPaper),
		Printing:   services.FormatValue(in.Printing),
		Binding:    services.FormatValue(in.Binding),
		CutOptions: services.CutSizeLabels(),
		Errors:     make(map[string]string),
	}
}

// buildListData renders the store contents into table rows.
func buildListData(list []entries.PaperEntry, editingIndex int) templates.EntryListData {
	rows := make([]templates.EntryRow, 0, len(list))
	for i, entry := range list {
		cells := services.EntryCells(entry)
		rendered := make([]string, len(cells))
		for j, c := range cells {
			rendered[j] = services.FormatValue(c)
		}
		rows = append(rows, templates.EntryRow{Index: i, ID: entry.ID, Cells: rendered})
	}

	totals := services.CalcTotals(list)
	return templates.EntryListData{
		Columns:       entries.Columns,
		Rows:          rows,
		TotalReqPaper: services.FormatValue(totals.ReqPaper),
		TotalAmount:   services.FormatINR(totals.TotalAmount),
		TotalFinal:    services.FormatINR(totals.FinalTotal),
		EditingIndex:  editingIndex,
	}
}

// renderEntries renders the entries page, or only its content for HTMX.
func renderEntries(e *core.RequestEvent, cfg config.Config, store *entries.Store, form templates.EntryFormData) error {
	editing := -1
	if form.IsEdit {
		editing = form.Index
	}
	data := templates.EntriesPageData{
		ReportTitle: cfg.ReportTitle,
		Form:        form,
		List:        buildListData(store.List(), editing),
	}

	var component templ.Component
	if isHTMX(e) {
		component = templates.EntriesContent(data)
	} else {
		component = templates.EntriesPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}
