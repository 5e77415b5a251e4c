package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/session"
	"taskboard.com/taskboard/internal/testutil"
)

func TestRateLimiterPerKey(t *testing.T) {
	e := echo.New()
	e.Use(RateLimiter(2, time.Minute, SessionOrIPKey))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func(cookie string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"))
	assert.Equal(t, http.StatusOK, do(""))
}

func TestSessionMiddleware(t *testing.T) {
	store := repository.NewSessionRepository(testutil.NewSQLiteDB(t))
	require.NoError(t, store.Save(context.Background(), "sid-1", session.State{Token: "tok", LoggedIn: true}, time.Hour))

	e := echo.New()
	e.Use(Session(store))
	e.GET("/", func(c echo.Context) error {
		state := SessionState(c)
		return c.JSON(http.StatusOK, map[string]any{"id": SessionID(c), "token": state.Token, "in": state.LoggedIn})
	})
	e.GET("/private", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireLogin)

	tests := []struct {
		name   string
		cookie string
		body   string
	}{
		{"no cookie", "", `{"id":"","in":false,"token":""}`},
		{"unknown session", "nope", `{"id":"","in":false,"token":""}`},
		{"valid session", "sid-1", `{"id":"sid-1","in":true,"token":"tok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
