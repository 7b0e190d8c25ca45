// Package metrics provides Prometheus metrics for the VasoVue backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram buckets for request latency in milliseconds.
var defaultLatencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}

// Signal length buckets; the estimator rejects anything under 100 samples,
// real captures land in the 100-3000 range.
var defaultSignalBuckets = []float64{50, 100, 250, 500, 1000, 2000, 5000}

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	enabled   bool
	registry  prometheus.Registerer

	// Prediction metrics
	predictions       *prometheus.CounterVec // by input mode and category
	predictionErrors  *prometheus.CounterVec // by reason
	signalLength      prometheus.Histogram
	systolicEstimate  prometheus.Histogram
	diastolicEstimate prometheus.Histogram

	// Export / session metrics
	exports          prometheus.Counter
	exportDuplicates prometheus.Counter
	exportSamples    prometheus.Histogram
	sessionsArchived prometheus.Counter
	archiveErrors    prometheus.Counter

	// Queue metrics
	queueSize     prometheus.Gauge
	queueCapacity prometheus.Gauge
	enqueueErrors prometheus.Counter

	// Worker metrics
	workerCount    prometheus.Gauge
	archiveLatency prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemory     prometheus.Gauge
	systemGoroutines prometheus.Gauge
	systemGCPause    prometheus.Histogram
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

var defaultManager *Manager //nolint:gochecknoglobals // package-level facade over a single manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	defaultManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "vasovue",
		subsystem: "backend",
		buckets:   defaultLatencyBuckets,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.predictions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_total",
		Help:      "Total predictions served, by input mode and resulting category.",
	}, []string{"mode", "category"})

	m.predictionErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prediction_errors_total",
		Help:      "Total rejected prediction requests, by reason.",
	}, []string{"reason"})

	m.signalLength = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "signal_length_samples",
		Help:      "Length of submitted rPPG signals in samples.",
		Buckets:   defaultSignalBuckets,
	})

	m.systolicEstimate = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "systolic_estimate_mmhg",
		Help:      "Distribution of estimated systolic values.",
		Buckets:   prometheus.LinearBuckets(90, 10, 8),
	})

	m.diastolicEstimate = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "diastolic_estimate_mmhg",
		Help:      "Distribution of estimated diastolic values.",
		Buckets:   prometheus.LinearBuckets(60, 5, 9),
	})

	m.exports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_total",
		Help:      "Total session export requests acknowledged.",
	})

	m.exportDuplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "export_duplicates_total",
		Help:      "Exports skipped because the session id was already seen.",
	})

	m.exportSamples = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "export_samples",
		Help:      "Number of samples carried by each exported session.",
		Buckets:   defaultSignalBuckets,
	})

	m.sessionsArchived = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_archived_total",
		Help:      "Sessions written to the in-memory session log.",
	})

	m.archiveErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "archive_errors_total",
		Help:      "Failures while archiving exported sessions.",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_queue_size",
		Help:      "Current number of sessions waiting to be archived.",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_queue_capacity",
		Help:      "Configured capacity of the session queue.",
	})

	m.enqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_enqueue_errors_total",
		Help:      "Sessions dropped because the queue was full or closed.",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "archiver_worker_count",
		Help:      "Number of running archiver workers.",
	})

	m.archiveLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "archive_latency_ms",
		Help:      "Latency of archiving a session, in milliseconds.",
		Buckets:   m.buckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests, by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemory = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes.",
	})

	m.systemGoroutines = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines.",
	})

	m.systemGCPause = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_ms",
		Help:      "Average GC pause time in milliseconds.",
		Buckets:   m.buckets,
	})
}

// Package-level recording functions delegating to the default manager.

// RecordPrediction counts one served prediction.
func RecordPrediction(mode, category string) {
	if defaultManager.enabled {
		defaultManager.predictions.WithLabelValues(mode, category).Inc()
	}
}

// RecordPredictionError counts one rejected prediction request.
func RecordPredictionError(reason string) {
	if defaultManager.enabled {
		defaultManager.predictionErrors.WithLabelValues(reason).Inc()
	}
}

// RecordSignalLength observes the length of a submitted signal.
func RecordSignalLength(samples int) {
	if defaultManager.enabled {
		defaultManager.signalLength.Observe(float64(samples))
	}
}

// RecordEstimate observes the systolic/diastolic values of one estimate.
func RecordEstimate(systolic, diastolic float64) {
	if defaultManager.enabled {
		defaultManager.systolicEstimate.Observe(systolic)
		defaultManager.diastolicEstimate.Observe(diastolic)
	}
}

// RecordExport counts one acknowledged export carrying the given sample count.
func RecordExport(samples int) {
	if defaultManager.enabled {
		defaultManager.exports.Inc()
		defaultManager.exportSamples.Observe(float64(samples))
	}
}

// RecordExportDuplicate counts a skipped duplicate export.
func RecordExportDuplicate() {
	if defaultManager.enabled {
		defaultManager.exportDuplicates.Inc()
	}
}

// RecordSessionArchived counts one session written to the session log.
func RecordSessionArchived() {
	if defaultManager.enabled {
		defaultManager.sessionsArchived.Inc()
	}
}

// RecordArchiveError counts one archiving failure.
func RecordArchiveError() {
	if defaultManager.enabled {
		defaultManager.archiveErrors.Inc()
	}
}

// RecordArchiveLatency observes the time taken to archive a session.
func RecordArchiveLatency(latencyMs float64) {
	if defaultManager.enabled {
		defaultManager.archiveLatency.Observe(latencyMs)
	}
}

// UpdateQueueSize sets the current session queue length.
func UpdateQueueSize(size int) {
	if defaultManager.enabled {
		defaultManager.queueSize.Set(float64(size))
	}
}

// UpdateQueueCapacity sets the configured session queue capacity.
func UpdateQueueCapacity(capacity int) {
	if defaultManager.enabled {
		defaultManager.queueCapacity.Set(float64(capacity))
	}
}

// RecordEnqueueError counts a dropped session.
func RecordEnqueueError() {
	if defaultManager.enabled {
		defaultManager.enqueueErrors.Inc()
	}
}

// UpdateWorkerCount sets the number of running archiver workers.
func UpdateWorkerCount(count int) {
	if defaultManager.enabled {
		defaultManager.workerCount.Set(float64(count))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if defaultManager.enabled {
		defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request latency.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if defaultManager.enabled {
		defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// UpdateSystemMemoryUsage sets the current heap allocation.
func UpdateSystemMemoryUsage(bytes uint64) {
	if defaultManager.enabled {
		defaultManager.systemMemory.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	if defaultManager.enabled {
		defaultManager.systemGoroutines.Set(float64(count))
	}
}

// RecordSystemGCPauseTime observes the average GC pause time.
func RecordSystemGCPauseTime(pauseMs float64) {
	if defaultManager.enabled {
		defaultManager.systemGCPause.Observe(pauseMs)
	}
}

// GetRegistry returns the registry backing the default manager so it can be
// served over HTTP.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
