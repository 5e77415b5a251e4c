package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	apperrors "taskboard.com/taskboard/internal/errors"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/session"
)

type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// Login stores the pasted API token in a new session. Checking the token is
// left to the tasks API.
func (h *Handler) Login(c echo.Context) error {
	token := strings.TrimSpace(c.FormValue("token"))
	if token == "" {
		return c.Render(apperrors.ErrTokenRequired.StatusCode, "login", loginPage{
			pageData: pageData{Title: "Login"},
			Error:    apperrors.ErrTokenRequired.Message,
		})
	}

	id := session.NewID()
	state := session.State{Token: token, LoggedIn: true}
	if err := h.sessions.Save(c.Request().Context(), id, state, h.cookies.TTL); err != nil {
		log.Error("save session failed", "err", err)
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cookies.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	log.Info("session created")

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	if id := middleware.SessionID(c); id != "" {
		if err := h.sessions.Delete(c.Request().Context(), id); err != nil {
			log.Warn("delete session failed", "err", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}
