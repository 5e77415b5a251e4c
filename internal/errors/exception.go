package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// New builds a one-off exception, used for failures reported by the tasks API.
func New(statusCode int, message string) *Exception {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &Exception{
		Message:    message,
		StatusCode: statusCode,
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "something went wrong"
}
