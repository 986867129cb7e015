package stores

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the caller supplied data the store will
	// not accept.
	ErrValidation = errors.New("validation failed")
)
