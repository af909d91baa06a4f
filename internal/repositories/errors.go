package repositories

import "errors"

var (
	// ErrNotFound is returned for by-id and by-token lookups that match nothing.
	ErrNotFound       = errors.New("document not found")
	ErrNotImplemented = errors.New("not implemented")
)
