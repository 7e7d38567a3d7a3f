package httpx

import (
	"errors"
	"net/http"

	"github.com/saylorsolutions/segroute/route"
)

var (
	ErrClientError    = errors.New("client error")
	ErrServerError    = errors.New("server error")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
)

// ErrPolicyFunc responds to a request that failed with err.
type ErrPolicyFunc func(w http.ResponseWriter, r *http.Request, err error)

// StatusFor maps an error to a response status code, defaulting to 500 for unknown error types.
// Invalid input or data from the router is a client error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrClientError), errors.Is(err, route.ErrInvalidInput), errors.Is(err, route.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// DefaultErrPolicy responds with the status from [StatusFor].
// Client errors include the error message, while server errors only include the status text.
func DefaultErrPolicy(w http.ResponseWriter, _ *http.Request, err error) {
	code := StatusFor(err)
	if code >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(code), code)
		return
	}
	http.Error(w, err.Error(), code)
}
