package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCruiseUnavailable indicates a cruise package that cannot be booked.
	ErrCruiseUnavailable = errors.New("cruise unavailable")
)
