package tmdb

import (
	"errors"
	"fmt"
)

// StatusError is returned when the catalog answers with a non-OK HTTP status.
// It is an application-level failure: the catalog was reached and replied.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog responded with status %d", e.Code)
	}
	return fmt.Sprintf("catalog responded with status %d: %s", e.Code, e.Message)
}

// AsStatusError reports whether err carries a catalog status failure.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
