package errors

import "net/http"

var ErrAPIUnavailable = &Exception{
	Message:    "tasks API is unreachable",
	StatusCode: http.StatusServiceUnavailable,
}
