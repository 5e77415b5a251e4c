package errors

import "net/http"

var ErrSessionNotFound = &Exception{
	Message:    "session not found",
	StatusCode: http.StatusUnauthorized,
}
