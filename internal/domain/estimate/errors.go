package estimate

import "errors"

// Sentinel kinds for estimation errors.
var (
	ErrInsufficientSignal = errors.New("insufficient signal data")
)
