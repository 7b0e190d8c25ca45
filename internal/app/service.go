// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	sessionqueue "github.com/Ayush-07-Mishra/Vasu-Vue/internal/adapters/mq/queue"
	workerpool "github.com/Ayush-07-Mishra/Vasu-Vue/internal/adapters/mq/worker"
	repository "github.com/Ayush-07-Mishra/Vasu-Vue/internal/adapters/repository"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/classify"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/dedupe"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/estimate"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/types"
	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/metrics"
)

// Prediction modes, used as metric labels.
const (
	modeSignal = "signal"
	modeDirect = "direct"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	// ErrQueueFull is returned when an export cannot be enqueued for archival.
	ErrQueueFull = errors.New("session queue full")

	// ErrUnsupportedInput is returned for prediction inputs the service does
	// not recognize.
	ErrUnsupportedInput = errors.New("unsupported prediction input")
)

// Service implements the API dependencies for the blood-pressure backend.
type Service struct {
	mu sync.RWMutex

	// Core components
	sessionLog   repository.Store
	deduper      dedupe.Deduper
	sessionQueue sessionqueue.Queue
	estimator    *estimate.LinearEstimator
	workerPool   *workerpool.Pool

	// Configuration
	workerCount      int
	queueSize        int
	dedupeSize       int
	historySize      int
	minSignalSamples int

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of archiver goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the session queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithHistorySize sets how many archived sessions are retained.
func WithHistorySize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.historySize = size
		}
	}
}

// WithMinSignalSamples sets the minimum rPPG signal length accepted by the
// estimator.
func WithMinSignalSamples(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minSignalSamples = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:      2,
		queueSize:        1024,
		dedupeSize:       50000,
		historySize:      1000,
		minSignalSamples: 100,
		stopCh:           make(chan struct{}),
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting prediction service...")

	// Initialize components
	s.sessionLog = repository.NewRingStore(ctx,
		repository.WithCapacity(s.historySize),
	)
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.sessionQueue = sessionqueue.NewInMemoryQueue(
		sessionqueue.WithCapacity(s.queueSize),
	)
	s.estimator = estimate.NewLinearEstimator(
		estimate.WithMinSamples(s.minSignalSamples),
	)

	// Create and start the archiver pool
	s.workerPool = workerpool.NewPool(s.workerCount, s.sessionQueue, s.sessionLog)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "prediction service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("historySize", s.historySize),
		logger.Int("minSignalSamples", s.minSignalSamples),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping prediction service...")

	// Close the queue first so workers drain buffered sessions and exit.
	if q, ok := s.sessionQueue.(*sessionqueue.InMemoryQueue); ok {
		_ = q.Close()
	}

	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	select {
	case <-s.stopCh:
		// Channel already closed
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "prediction service stopped")
}

// Predict derives a blood-pressure reading from the given input.
//
// A SignalSample runs through the estimator; a DirectReading is classified
// as-is. Both readings are rounded to one decimal place.
func (s *Service) Predict(ctx context.Context, input model.PredictionInput) (types.Prediction, error) {
	var reading estimate.Reading

	switch in := input.(type) {
	case model.SignalSample:
		metrics.RecordSignalLength(len(in.Signal))

		r, err := s.estimator.Estimate(ctx, in.Signal)
		if err != nil {
			if errors.Is(err, estimate.ErrInsufficientSignal) {
				metrics.RecordPredictionError("insufficient_signal")
			} else {
				metrics.RecordPredictionError("estimate_failed")
			}
			return types.Prediction{}, err
		}
		reading = r

		category := classify.Reading(reading.Systolic, reading.Diastolic)
		metrics.RecordPrediction(modeSignal, category.String())
		metrics.RecordEstimate(reading.Systolic, reading.Diastolic)

		s.logger.Debug(ctx, "signal prediction",
			logger.Int("samples", len(in.Signal)),
			logger.String("emotion", in.Emotion),
			logger.Float64("systolic", reading.Systolic),
			logger.Float64("diastolic", reading.Diastolic),
			logger.String("category", category.String()),
		)

		return types.Prediction{
			Systolic:  round1(reading.Systolic),
			Diastolic: round1(reading.Diastolic),
			Category:  category.String(),
			Success:   true,
		}, nil

	case model.DirectReading:
		category := classify.Reading(in.Systolic, in.Diastolic)
		metrics.RecordPrediction(modeDirect, category.String())

		return types.Prediction{
			Systolic:  round1(in.Systolic),
			Diastolic: round1(in.Diastolic),
			Category:  category.String(),
			Success:   true,
		}, nil

	default:
		metrics.RecordPredictionError("unsupported_input")
		return types.Prediction{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
}

// ExportSession submits a session for asynchronous archival. Re-exports of a
// session ID already seen are acknowledged without being enqueued again.
func (s *Service) ExportSession(ctx context.Context, sess model.Session) error {
	metrics.RecordExport(sess.SampleCount)

	if s.deduper.SeenAndRecord(ctx, sess.SessionID) {
		metrics.RecordExportDuplicate()
		s.logger.Debug(ctx, "duplicate session export, skipping",
			logger.String("sessionID", sess.SessionID),
		)
		return nil
	}

	if !s.sessionQueue.Enqueue(ctx, sess) {
		// Allow the client to retry the same session ID later.
		s.deduper.Unrecord(ctx, sess.SessionID)
		s.logger.Warn(ctx, "session queue full, export dropped",
			logger.String("sessionID", sess.SessionID),
		)
		return ErrQueueFull
	}

	s.logger.Debug(ctx, "session enqueued for archival",
		logger.String("sessionID", sess.SessionID),
		logger.Int("samples", sess.SampleCount),
	)
	return nil
}

// RecentSessions returns up to n archived sessions, newest first.
func (s *Service) RecentSessions(ctx context.Context, n int) ([]types.SessionRecord, error) {
	sessions, err := s.sessionLog.Recent(ctx, n)
	if err != nil {
		return nil, err
	}

	// Convert to API format
	records := make([]types.SessionRecord, len(sessions))
	for i, sess := range sessions {
		records[i] = types.SessionRecord{
			SessionID:   sess.SessionID,
			SampleCount: sess.SampleCount,
			Emotion:     sess.Emotion,
			ReceivedAt:  sess.ReceivedAt,
		}
	}

	return records, nil
}

// MinSignalSamples returns the minimum accepted rPPG signal length.
func (s *Service) MinSignalSamples() int {
	return s.minSignalSamples
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":          s.started,
		"workerCount":      s.workerCount,
		"queueSize":        s.queueSize,
		"dedupeSize":       s.dedupeSize,
		"historySize":      s.historySize,
		"minSignalSamples": s.minSignalSamples,
	}

	if s.started {
		queueLen := s.sessionQueue.Len(ctx)
		archived := s.sessionLog.Count(ctx)

		stats["queueLength"] = queueLen
		stats["archivedSessions"] = archived
		stats["dedupeEntries"] = s.deduper.Size()

		// Update metrics
		metrics.UpdateQueueSize(queueLen)
	}

	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// round1 rounds to one decimal place, matching the wire format.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
