package errors

import "net/http"

var ErrInvalidResponse = &Exception{
	Message:    "unexpected response from tasks API",
	StatusCode: http.StatusBadGateway,
}
