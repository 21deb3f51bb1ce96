package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"paperrate/config"
	"paperrate/entries"
	"paperrate/services"
)

// HandleEntryEdit renders the form prefilled with the entry at {index}.
func HandleEntryEdit(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}

		index, ok := parseIndex(e)
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Invalid entry index")
		}

		entry, err := session.Entries.Get(index)
		if err != nil {
			log.Printf("entry_edit: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Entry not found")
		}

		return renderEntries(e, cfg, session.Entries, editForm(index, entry))
	}
}

// HandleEntryUpdate replaces the entry at {index} with the submitted form.
// The form carries the ID of the entry it was opened for; if a delete has
// shifted a different entry into {index} the update is refused.
func HandleEntryUpdate(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}

		index, ok := parseIndex(e)
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Invalid entry index")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		current, err := session.Entries.Get(index)
		if err != nil {
			log.Printf("entry_update: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Entry not found")
		}

		in, form := parseEntryForm(e.Request)
		form.Index = index
		form.IsEdit = true

		if in.ID != "" && in.ID != current.ID {
			log.Printf("entry_update: stale index %d (form %s, store %s)", index, in.ID, current.ID)
			if moved := session.Entries.IndexOf(in.ID); moved >= 0 {
				return ErrorToast(e, http.StatusConflict, fmt.Sprintf("This entry is now row %d. Reload and try again.", moved+1))
			}
			return ErrorToast(e, http.StatusConflict, "This entry was deleted since you opened it.")
		}
		in.ID = current.ID
		form.EntryID = current.ID

		entry, err := services.BuildEntry(in)
		if err != nil {
			form.Errors = services.FieldErrors(err)
			SetToast(e, "warning", "Please fix the errors below")
			return renderEntries(e, cfg, session.Entries, form)
		}

		if err := session.Entries.Replace(index, entry); err != nil {
			if errors.Is(err, entries.ErrIndexOutOfRange) {
				return ErrorToast(e, http.StatusNotFound, "Entry not found")
			}
			log.Printf("entry_update: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return redirectWithToast(e, "success", "Row updated successfully!", "/entries")
	}
}
