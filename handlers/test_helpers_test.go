package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"paperrate/config"
	"paperrate/services"
	"paperrate/sessions"
	"paperrate/testhelpers"
)

var testConfig = config.Config{ReportTitle: services.DefaultReportTitle}

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// newSessionRequest builds a request carrying a fresh session, as the
// session middleware would leave it.
func newSessionRequest(t *testing.T, method, target string, body string) (*http.Request, *sessions.Session) {
	t.Helper()

	_, session := testhelpers.NewTestSession(t)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return testhelpers.WithSession(req, SessionKey, session), session
}

// referenceForm is the worked example: 1000 sheets, A4 cut, 500 per rim of
// 500, printing 200, binding 100.
func referenceForm() url.Values {
	return url.Values{
		"paper_type":  {"Maplitho"},
		"paper_size":  {"23x36"},
		"paper_gsm":   {"70"},
		"paper_rate":  {"500"},
		"paper_cut":   {"A4 (1/4)"},
		"rim_size":    {"500"},
		"billbook":    {"Bill Book"},
		"total_paper": {"1000"},
		"printing":    {"200"},
		"binding":     {"100"},
	}
}
