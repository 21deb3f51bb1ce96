package sessions

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// PruneJobID identifies the session pruning job in the app scheduler.
const PruneJobID = "paperrate_prune_sessions"

// RegisterPruneJob schedules Prune on the app's cron every ten minutes.
func RegisterPruneJob(app core.App, m *Manager) {
	app.Cron().MustAdd(PruneJobID, "*/10 * * * *", func() {
		if removed := m.Prune(); removed > 0 {
			log.Printf("sessions: pruned %d idle sessions, %d active", removed, m.Len())
		}
	})
}
