package pkg

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const SessionCookieName = "user_session"

func GenerateNewSessionID() string {
	return uuid.NewString()
}

// SessionCookie - returns the session cookie of the request, or a freshly issued one (created is true).
func SessionCookie(req *http.Request, ttl time.Duration) (*http.Cookie, bool) {
	if cookie, err := req.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie, false
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    GenerateNewSessionID(),
		Expires:  time.Now().Add(ttl),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, true
}

// SessionID - returns the session of the request, setting the cookie on the response when it is new.
func SessionID(writer http.ResponseWriter, req *http.Request, ttl time.Duration) string {
	cookie, created := SessionCookie(req, ttl)
	if created {
		http.SetCookie(writer, cookie)

		// later reads of the same request see the new session
		req.AddCookie(cookie)
	}

	return cookie.Value
}
