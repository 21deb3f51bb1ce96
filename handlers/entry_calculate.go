package handlers

import (
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase/core"

	"paperrate/services"
	"paperrate/templates"
)

// HandleEntryCalculate previews the derived fields for the form as it
// stands, without saving anything.
func HandleEntryCalculate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		in, _ := parseEntryForm(e.Request)

		var data templates.CalcPreviewData
		entry, err := services.BuildEntry(in)
		if err != nil {
			data.Error = firstFieldError(services.FieldErrors(err))
		} else {
			data.ReqPaper = services.FormatValue(entry.ReqPaper)
			data.TotalAmount = services.FormatINR(entry.TotalAmount)
			data.FinalTotal = services.FormatINR(entry.FinalTotal)
		}

		return templates.CalcPreview(data).Render(e.Request.Context(), e.Response)
	}
}

// firstFieldError picks a deterministic message out of a field error map.
func firstFieldError(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return fields[keys[0]]
}
