// Package repository defines the session log interface and errors.
package repository

// Option applies a configuration option to the RingStore.
type Option func(*RingStore)

// WithCapacity sets the number of sessions the log retains.
func WithCapacity(capacity int) Option {
	return func(s *RingStore) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}
