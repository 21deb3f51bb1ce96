package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// HandleEntryDelete removes the entry at {index}; later entries move up.
func HandleEntryDelete() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}

		index, ok := parseIndex(e)
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Invalid entry index")
		}

		removed, err := session.Entries.Remove(index)
		if err != nil {
			log.Printf("entry_delete: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Entry not found")
		}

		log.Printf("entry_delete: session %s removed entry %d (%s)", session.ID, index, removed.ID)

		return redirectWithToast(e, "success", "Row deleted!", "/entries")
	}
}

// HandleEntriesClear empties the session's table.
func HandleEntriesClear() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}

		n := session.Entries.Len()
		session.Entries.Clear()
		log.Printf("entry_clear: session %s cleared %d entries", session.ID, n)

		return redirectWithToast(e, "success", "All entries removed", "/entries")
	}
}
