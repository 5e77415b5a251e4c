package middleware

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	apperrors "taskboard.com/taskboard/internal/errors"
	"taskboard.com/taskboard/internal/session"
)

const (
	sessionIDKey    = "session.id"
	sessionStateKey = "session.state"
)

// Session loads the state for the session cookie. Requests without a valid
// session get the zero State, which reads as logged out.
func Session(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(sessionStateKey, session.State{})

			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			state, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, apperrors.ErrSessionNotFound) {
					log.Warn("session lookup failed", "err", err)
				}
				return next(c)
			}

			c.Set(sessionIDKey, cookie.Value)
			c.Set(sessionStateKey, state)
			return next(c)
		}
	}
}

func SessionState(c echo.Context) session.State {
	state, _ := c.Get(sessionStateKey).(session.State)
	return state
}

func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}

// RequireLogin sends logged-out browsers to the login page.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !SessionState(c).LoggedIn {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return next(c)
	}
}
