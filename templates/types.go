// Package templates renders the HTML pages and HTMX fragments of the app.
package templates

// EntryFormData backs the add/update form. Numeric fields are kept as the
// submitted strings so a re-rendered form shows what the user typed.
type EntryFormData struct {
	Index      int
	IsEdit     bool
	EntryID    string
	PaperType  string
	PaperSize  string
	GSM        string
	PaperRate  string
	CutSize    string
	RimSize    string
	Billbook   string
	TotalPaper string
	Printing   string
	Binding    string
	CutOptions []string
	Errors     map[string]string
}

// Action is the URL the form posts to.
func (d EntryFormData) Action() string {
	if d.IsEdit {
		return entryPath(d.Index) + "/save"
	}
	return "/entries"
}

// SubmitLabel is the text of the form's submit button.
func (d EntryFormData) SubmitLabel() string {
	if d.IsEdit {
		return "Update Entry"
	}
	return "Add Paper Entry"
}

// EntryRow is one rendered table row.
type EntryRow struct {
	Index int
	ID    string
	Cells []string
}

// EntryListData backs the entries table.
type EntryListData struct {
	Columns       []string
	Rows          []EntryRow
	TotalReqPaper string
	TotalAmount   string
	TotalFinal    string
	EditingIndex  int
}

// EntriesPageData backs the main page: form on top, table below.
type EntriesPageData struct {
	ReportTitle string
	Form        EntryFormData
	List        EntryListData
}

// CalcPreviewData is the live calculation shown under the form.
type CalcPreviewData struct {
	ReqPaper    string
	TotalAmount string
	FinalTotal  string
	Error       string
}

// ImportError is one row-level problem shown after an upload.
type ImportError struct {
	Row     int
	Field   string
	Message string
}

// ImportPageData backs the bulk import page.
type ImportPageData struct {
	FileName  string
	TotalRows int
	Imported  int
	ErrorRows int
	Errors    []ImportError
	Message   string
}
