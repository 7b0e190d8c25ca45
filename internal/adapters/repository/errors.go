package repository

import "errors"

// Sentinel kinds for session log errors.
var (
	ErrInvalidLimit = errors.New("invalid session limit")
)
