package server

import "errors"

var (
	// ErrInvalidBody marks request bodies rejected before rendering.
	ErrInvalidBody = errors.New("server: invalid request body")
	// ErrTooManyItems is returned when a batch exceeds the configured limit.
	ErrTooManyItems = errors.New("server: too many batch items")
)
