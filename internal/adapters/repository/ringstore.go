package repository

import (
	"context"
	"sync"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
)

// Default session log capacity.
const defaultCapacity = 1000

// RingStore implements Store with a fixed-size ring buffer. Appends never
// fail; the oldest session is overwritten once the ring is full.
type RingStore struct {
	mu       sync.RWMutex
	sessions []model.Session
	next     int // write position
	count    int // live entries, <= capacity
	capacity int
}

// NewRingStore creates a ring store with configuration options.
func NewRingStore(ctx context.Context, opts ...Option) *RingStore {
	s := &RingStore{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.sessions = make([]model.Session, s.capacity)
	return s
}

// Append records a session, overwriting the oldest entry when full.
func (s *RingStore) Append(ctx context.Context, session model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[s.next] = session
	s.next = (s.next + 1) % s.capacity
	if s.count < s.capacity {
		s.count++
	}
	return nil
}

// Recent returns up to n sessions, newest first.
func (s *RingStore) Recent(ctx context.Context, n int) ([]model.Session, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > s.count {
		n = s.count
	}
	out := make([]model.Session, 0, n)
	for i := 1; i <= n; i++ {
		// Walk backwards from the most recent write position.
		idx := (s.next - i + s.capacity) % s.capacity
		out = append(out, s.sessions[idx])
	}
	return out, nil
}

// Count returns the number of sessions currently retained.
func (s *RingStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
