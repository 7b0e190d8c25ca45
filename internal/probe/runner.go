package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
)

// Run executes the complete signal probe.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting signal probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("sessions", config.NumSessions),
		logger.Int("samples", config.Samples),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate synthetic capture sessions
	sessions, err := generateSessions(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("session generation failed: %w", err)
	}

	// Step 3: Submit signals for prediction concurrently
	results, err := runPredictions(ctx, config, sessions, stats)
	if err != nil {
		return fmt.Errorf("prediction submission failed: %w", err)
	}

	// Step 4: Verify predicted categories against the generating profiles
	if err := verifyPredictions(ctx, results, stats); err != nil {
		return fmt.Errorf("prediction verification failed: %w", err)
	}

	// Step 5: Export sessions
	if err := runExports(ctx, config, sessions, stats); err != nil {
		return fmt.Errorf("session export failed: %w", err)
	}

	// Step 6: Wait for archival
	logger.Get().Info(ctx, "waiting for sessions to be archived")
	time.Sleep(ArchiveSettleDelay)

	// Step 7: Retrieve and verify the archive
	records, err := fetchSessions(ctx, config, config.NumSessions)
	if err != nil {
		return fmt.Errorf("session retrieval failed: %w", err)
	}
	if err := verifyArchive(ctx, sessions, records, stats); err != nil {
		return fmt.Errorf("archive verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var matchRate, sessionsPerSecond float64

	if stats.PredictionsSent > 0 {
		matchRate = float64(stats.PredictionsOK) / float64(stats.PredictionsSent) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		sessionsPerSecond = float64(stats.SessionsGenerated) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("sessionsGenerated", stats.SessionsGenerated),
		logger.Int("predictionsSent", stats.PredictionsSent),
		logger.Int("predictionsOK", stats.PredictionsOK),
		logger.Int("predictionsMismatch", stats.PredictionsMismatch),
		logger.Int("predictionsFailed", stats.PredictionsFailed),
		logger.Int("exportsSent", stats.ExportsSent),
		logger.Int("exportsAcked", stats.ExportsAcked),
		logger.Int("sessionsArchived", stats.SessionsArchived),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("matchRate", matchRate),
		logger.Float64("sessionsPerSecond", sessionsPerSecond))
}
