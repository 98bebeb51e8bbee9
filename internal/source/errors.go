package source

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingName reports a record object without a usable name field.
	ErrMissingName = errors.New("record has no name")
	// ErrInvalidID reports an id that is neither a string nor a number.
	ErrInvalidID = errors.New("record id must be a string or number")
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// Temporary reports whether retrying later could succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
