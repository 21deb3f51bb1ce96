package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"paperrate/config"
)

// HandleEntryList renders the blank form above the session's entries.
func HandleEntryList(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := requireSession(e)
		if session == nil {
			return err
		}
		return renderEntries(e, cfg, session.Entries, blankForm())
	}
}
