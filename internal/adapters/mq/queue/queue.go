// Package queue defines the contract for enqueuing and consuming exported
// sessions awaiting archival.
package queue

import (
	"context"
	"sync"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/metrics"
)

// Default queue configuration constants.
const defaultCapacity = 1024

// Session is the payload type flowing through the queue.
type Session = model.Session

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a session to the queue.
	// Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, s Session) bool

	// Dequeue returns a channel that receives sessions as they become
	// available. The channel is closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Session

	// Len returns the current number of queued sessions.
	Len(ctx context.Context) int

	// Close gracefully shuts down the queue. After closing, no new
	// sessions can be enqueued and the dequeue channel is closed.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	sessions chan Session
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.sessions = make(chan Session, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)

	return q
}

// Enqueue adds a session to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, s Session) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordEnqueueError()
		return false
	}

	select {
	case q.sessions <- s:
		metrics.UpdateQueueSize(len(q.sessions))
		return true
	case <-ctx.Done():
		metrics.RecordEnqueueError()
		return false
	default:
		metrics.RecordEnqueueError()
		return false // queue is full
	}
}

// Dequeue returns a channel that receives sessions as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Session {
	out := make(chan Session)
	go func() {
		defer close(out)
		for s := range q.sessions {
			select {
			case out <- s:
				metrics.UpdateQueueSize(len(q.sessions))
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued sessions.
func (q *InMemoryQueue) Len(ctx context.Context) int {
	size := len(q.sessions)
	metrics.UpdateQueueSize(size)
	return size
}

// Close gracefully shuts down the queue.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	close(q.sessions)
	q.closed = true

	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
