package errors

import "net/http"

var ErrTokenRequired = &Exception{
	Message:    "token is required",
	StatusCode: http.StatusUnprocessableEntity,
}
