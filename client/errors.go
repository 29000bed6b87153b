// ABOUTME: Sentinel errors for the Briefly library API

package briefly

import "errors"

var (
	// ErrInvalidPageSize is returned when a page size below 1 is configured
	ErrInvalidPageSize = errors.New("page size must be at least 1")

	// ErrEmptyBaseURL is returned when the hosted API option gets an empty URL
	ErrEmptyBaseURL = errors.New("hosted API base URL cannot be empty")
)
