package config

import (
	"errors"
)

// Sentinel error kinds for this package, matchable with errors.Is from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("config load failed")
)
