package domain

import "errors"

// Sentinel errors returned by repositories and use cases. Handlers map these
// to HTTP statuses with errors.Is instead of matching on message text.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)
