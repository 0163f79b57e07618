package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNoActiveUser      = errors.New("no active user")
	ErrLookupNotFound    = errors.New("no dictionary entry")
	ErrLookupUnavailable = errors.New("dictionary unavailable")
)
