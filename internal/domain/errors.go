package domain

import "errors"

// Sentinel errors returned by repositories and services. Controllers map
// them to HTTP status codes with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("already exists")
	ErrResultSetTooLarge = errors.New("result set too large")
)
