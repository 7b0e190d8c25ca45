// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New(); Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":5001".
	Addr string `koanf:"addr"`

	// MinSignalSamples sets the minimum rPPG signal length accepted by the
	// estimator.
	MinSignalSamples int `koanf:"min_signal_samples"`

	// QueueSize bounds the in-memory session queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of archiver workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// HistorySize caps how many archived sessions are retained.
	HistorySize int `koanf:"history_size"`

	// MaxSessionsLimit caps GET /api/sessions?limit.
	MaxSessionsLimit int `koanf:"max_sessions_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":5001",
		MinSignalSamples: 100,
		QueueSize:        1024,
		WorkerCount:      2,
		DedupeSize:       50_000,
		HistorySize:      1000,
		MaxSessionsLimit: 100,
	}
}
