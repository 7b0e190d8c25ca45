package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithLatencyBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty or nil option values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithLatencyBuckets(nil),
				WithRegistry(registry),
			)

			Convey("Then defaults should be kept and creation should succeed", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "vasovue")
				So(manager.subsystem, ShouldEqual, "backend")
				So(manager.buckets, ShouldResemble, defaultLatencyBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording prediction metrics", func() {
			Convey("Then it should record predictions by mode and category", func() {
				So(func() {
					RecordPrediction("signal", "Normal")
					RecordPrediction("signal", "Elevated")
					RecordPrediction("legacy", "Hypertension Stage 2")
				}, ShouldNotPanic)
			})

			Convey("And it should record prediction errors", func() {
				So(func() {
					RecordPredictionError("insufficient_signal")
					RecordPredictionError("invalid_input")
				}, ShouldNotPanic)
			})

			Convey("And it should record signal lengths and estimates", func() {
				So(func() {
					RecordSignalLength(100)
					RecordSignalLength(2500)
					RecordEstimate(120.0, 80.0)
					RecordEstimate(160.0, 100.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording export metrics", func() {
			Convey("Then it should record exports and duplicates", func() {
				So(func() {
					RecordExport(0)
					RecordExport(300)
					RecordExportDuplicate()
				}, ShouldNotPanic)
			})

			Convey("And it should record archiving activity", func() {
				So(func() {
					RecordSessionArchived()
					RecordArchiveError()
					RecordArchiveLatency(5.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording queue and worker metrics", func() {
			So(func() {
				UpdateQueueSize(10)
				UpdateQueueCapacity(1000)
				RecordEnqueueError()
				UpdateWorkerCount(4)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/healthz", "GET", "200")
					RecordHTTPRequest("/api/predict", "POST", "200")
					RecordHTTPRequest("/api/export", "POST", "200")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/healthz", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/api/predict", "POST", "400", 10.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024 * 1024 * 100)
				UpdateSystemGoroutineCount(100)
				RecordSystemGCPauseTime(1.5)
			}, ShouldNotPanic)
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					UpdateQueueSize(0)
					UpdateWorkerCount(0)
					RecordSignalLength(0)
					RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
				}, ShouldNotPanic)
			})

			Convey("And using very large values", func() {
				So(func() {
					UpdateQueueSize(1000000)
					RecordSignalLength(10000000)
					RecordArchiveLatency(30000.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty label values", func() {
				So(func() {
					RecordHTTPRequest("", "", "200")
					RecordPrediction("", "")
					RecordPredictionError("")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordPrediction("signal", "Normal")
						UpdateQueueSize(j)
						RecordSignalLength(100 + j)
						RecordHTTPRequest("/test", "GET", "200")
					}
					done <- true
				}()
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package-level registry", t, func() {
		Convey("When fetching it", func() {
			registry := GetRegistry()

			Convey("Then it should be non-nil and gatherable", func() {
				So(registry, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeNil)
			})
		})
	})
}
