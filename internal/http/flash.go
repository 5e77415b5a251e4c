package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/api"
)

const (
	flashCookieName = "taskboard_flash"
	flashMaxAge     = 60
)

// setFlash carries notices across a redirect to the next rendered page.
func (h *Handler) setFlash(c echo.Context, notices []api.Notice) {
	if len(notices) == 0 {
		return
	}
	data, err := json.Marshal(notices)
	if err != nil {
		return
	}
	c.SetCookie(h.flashCookie(base64.RawURLEncoding.EncodeToString(data), flashMaxAge))
}

// takeFlash returns the notices left by the previous response and clears
// them so they are shown once.
func (h *Handler) takeFlash(c echo.Context) []api.Notice {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(h.flashCookie("", -1))

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var notices []api.Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil
	}
	return notices
}

func (h *Handler) flashCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
