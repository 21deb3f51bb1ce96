package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"paperrate/config"
	"paperrate/services"
)

// HandleEntrySave derives the calculated fields from the submitted form and
// appends the entry.
func HandleEntrySave(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		in, form := parseEntryForm(e.Request)
		form.Index = -1
		in.ID = ""

		entry, err := services.BuildEntry(in)
		if err != nil {
			form.Errors = services.FieldErrors(err)
			SetToast(e, "warning", "Please fix the errors below")
			return renderEntries(e, cfg, session.Entries, form)
		}

		index := session.Entries.Append(entry)
		log.Printf("entry_create: session %s added entry %d (final total %.2f)", session.ID, index, entry.FinalTotal)

		return redirectWithToast(e, "success", "Entry added successfully!", "/entries")
	}
}
