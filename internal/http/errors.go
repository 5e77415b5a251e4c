package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	apperrors "taskboard.com/taskboard/internal/errors"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/views"
)

// ErrorHandler renders failures as an HTML page. Results for a browser that
// already went away are dropped.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed || errors.Is(err, views.ErrViewClosed) {
		return
	}

	code := apperrors.StatusCode(err)
	message := apperrors.Message(err)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	page := errorPage{
		pageData: pageData{Title: http.StatusText(code), LoggedIn: middleware.SessionState(c).LoggedIn},
		Code:     code,
		Message:  message,
	}
	if rerr := c.Render(code, "error", page); rerr != nil {
		log.Error("render error page failed", "err", rerr)
		_ = c.String(code, message)
	}
}
