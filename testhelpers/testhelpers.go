// Package testhelpers provides utilities for testing the paperrate handlers.
package testhelpers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"

	"paperrate/entries"
	"paperrate/services"
	"paperrate/sessions"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory
// and bootstraps it. The directory is removed when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	t.Cleanup(func() {
		app.ResetBootstrapState()
	})

	return app
}

// NewTestSession returns a fresh session from a manager with a one hour TTL.
func NewTestSession(t *testing.T) (*sessions.Manager, *sessions.Session) {
	t.Helper()

	m := sessions.NewManager(time.Hour)
	s, _ := m.Resolve("")
	return m, s
}

// WithSession returns req carrying session under key, the way the session
// middleware leaves it.
func WithSession(req *http.Request, key any, session *sessions.Session) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), key, session))
}

// AddTestEntry derives and appends an entry of the given paper type using
// the reference inputs (1000 sheets, A4 cut, 500/rim of 500, 200 + 100).
func AddTestEntry(t *testing.T, store *entries.Store, paperType string) entries.PaperEntry {
	t.Helper()

	entry, err := services.BuildEntry(services.EntryInput{
		PaperType:  paperType,
		PaperSize:  "23x36",
		GSM:        70,
		PaperRate:  500,
		CutSize:    "A4 (1/4)",
		RimSize:    500,
		Billbook:   "Bill Book",
		TotalPaper: 1000,
		Printing:   200,
		Binding:    100,
	})
	if err != nil {
		t.Fatalf("failed to build test entry: %v", err)
	}
	index := store.Append(entry)
	stored, err := store.Get(index)
	if err != nil {
		t.Fatalf("failed to read back test entry: %v", err)
	}
	return stored
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
