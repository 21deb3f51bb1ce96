package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"paperrate/sessions"
)

type contextKey string

const SessionKey contextKey = "session"

// GetSession extracts the session placed in the request context by
// SessionMiddleware.
func GetSession(r *http.Request) *sessions.Session {
	if val, ok := r.Context().Value(SessionKey).(*sessions.Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware resolves the session cookie to a session, issuing a new
// cookie when the session is new, and stores the session in the request
// context for the handlers.
func SessionMiddleware(manager *sessions.Manager) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var id string
		if cookie, err := e.Request.Cookie(sessions.CookieName); err == nil {
			id = cookie.Value
		}

		session, created := manager.Resolve(id)
		if created {
			http.SetCookie(e.Response, &http.Cookie{
				Name:     sessions.CookieName,
				Value:    session.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, session)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// requireSession returns the request's session, or writes an error response
// when the middleware did not run.
func requireSession(e *core.RequestEvent) (*sessions.Session, error) {
	session := GetSession(e.Request)
	if session == nil {
		return nil, ErrorToast(e, http.StatusInternalServerError, "Session unavailable. Please reload the page.")
	}
	return session, nil
}
