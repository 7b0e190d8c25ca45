// Package worker defines the archiver workers that drain the session queue
// into the session log.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 2
	workerShutdownTimeout = 5 * time.Second
)

// Session is what workers read off the queue.
type Session = model.Session

// Archiver persists an exported session.
type Archiver interface {
	Append(ctx context.Context, s model.Session) error
}

// Queue defines how workers receive sessions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Session
}

// Worker drains sessions from a queue into an archiver.
type Worker struct {
	queue    Queue
	archiver Archiver
	name     string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewWorker creates a new worker with configuration options.
func NewWorker(queue Queue, archiver Archiver, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		archiver: archiver,
		name:     "archiver",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}

	return w
}

// Run starts the worker loop. It exits when ctx is cancelled, Shutdown is
// called, or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	sessionChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case s, ok := <-sessionChan:
			if !ok {
				return
			}
			if err := w.archive(ctx, s); err != nil {
				w.logger.Error(ctx, "error archiving session", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// archive persists a single session.
func (w *Worker) archive(ctx context.Context, s Session) error {
	start := time.Now()
	defer func() {
		metrics.RecordArchiveLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.archiver.Append(ctx, s); err != nil {
		metrics.RecordArchiveError()
		w.logger.Error(ctx, "session log append failed",
			logger.String("sessionID", s.SessionID),
			logger.Error(err),
		)
		return fmt.Errorf("failed to archive session %s: %w", s.SessionID, err)
	}

	metrics.RecordSessionArchived()
	w.logger.Debug(ctx, "session archived",
		logger.String("sessionID", s.SessionID),
		logger.Int("samples", s.SampleCount),
	)
	return nil
}

// Pool manages multiple archiver workers.
type Pool struct {
	workers []*Worker

	// Shutdown control
	shutdown chan struct{}

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, queue Queue, archiver Archiver) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	pool := &Pool{
		workers:  make([]*Worker, workerCount),
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("archiver-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewWorker(
			queue,
			archiver,
			WithName("archiver-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
	defer cancel()

	for _, w := range p.workers {
		if err := w.Shutdown(ctx); err != nil {
			p.logger.Warn(ctx, "worker did not stop cleanly",
				logger.String("worker", w.name),
				logger.Error(err),
			)
		}
	}
	metrics.UpdateWorkerCount(0)
}

// Shutdown gracefully stops all workers, honoring the caller's deadline.
func (p *Pool) Shutdown(ctx context.Context) error {
	var firstErr error
	for _, w := range p.workers {
		if err := w.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	metrics.UpdateWorkerCount(0)
	return firstErr
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}
