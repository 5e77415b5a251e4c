package errors

import "net/http"

var ErrNotLoggedIn = &Exception{
	Message:    "please log in first",
	StatusCode: http.StatusUnauthorized,
}
