package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID(t *testing.T) {
	t.Run("Issues a new session cookie", func(t *testing.T) {
		// Given: a request without a session
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		// When: the session is resolved
		id := SessionID(rec, req, time.Hour)

		// Then: a uuid cookie is set on the response
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookieName, cookies[0].Name)
		assert.Equal(t, id, cookies[0].Value)

		// Then: resolving again on the same request returns the same session
		assert.Equal(t, id, SessionID(rec, req, time.Hour))
	})

	t.Run("Keeps the existing session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc"})
		rec := httptest.NewRecorder()

		id := SessionID(rec, req, time.Hour)

		assert.Equal(t, "abc", id)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestSessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	cookie, created := SessionCookie(req, time.Hour)

	require.True(t, created)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.WithinDuration(t, time.Now().Add(time.Hour), cookie.Expires, time.Minute)
}
