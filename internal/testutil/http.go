package testutil

import (
	"net/http"
	"testing"
	"time"

	"paytrack/internal/auth"
)

// SetupAuthCookie creates a session for user and attaches its cookie to
// req, so handler tests can act as an authenticated browser.
func SetupAuthCookie(
	t *testing.T,
	service *auth.Service,
	req *http.Request,
	user auth.User,
	cookieKey string,
) auth.Session {
	t.Helper()

	session, err := service.CreateSession(t.Context(), user)
	if err != nil {
		t.Fatal("failed to create session")
	}

	cookie := &http.Cookie{
		Name:     cookieKey,
		Value:    session.ID,
		Expires:  time.Unix(session.ExpiresAt, 0),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
	req.Header.Set("Cookie", cookie.String())

	return session
}
