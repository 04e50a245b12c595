package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the CruiseBase API. The gateway recovers a
// single expired-access-token 401 internally; every other failure surfaces to
// the caller as one of these.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api request failed (status %d): %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsUnauthorized reports whether err is a 401 that survived the refresh
// protocol. Callers are expected to treat it as "logged out".
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
