package probe

import (
	"context"
	"fmt"

	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
)

// verifyPredictions checks every returned category against the profile the
// signal was generated from.
func verifyPredictions(ctx context.Context, results []predictionResult, stats *Stats) error {
	for _, r := range results {
		switch {
		case r.err != nil:
			stats.PredictionsFailed++
			logger.Get().Warn(ctx, "prediction failed",
				logger.String("sessionID", r.session.SessionID),
				logger.Error(r.err),
			)
		case r.category != r.session.Expected:
			stats.PredictionsMismatch++
			logger.Get().Warn(ctx, "category mismatch",
				logger.String("sessionID", r.session.SessionID),
				logger.String("expected", r.session.Expected),
				logger.String("got", r.category),
			)
		default:
			stats.PredictionsOK++
		}
	}

	if stats.PredictionsFailed > 0 || stats.PredictionsMismatch > 0 {
		return fmt.Errorf("prediction verification failed: %d failed, %d mismatched",
			stats.PredictionsFailed, stats.PredictionsMismatch)
	}

	logger.Get().Info(ctx, "all predictions verified", logger.Int("ok", stats.PredictionsOK))
	return nil
}

// verifyArchive checks that exported sessions show up in the archive.
func verifyArchive(ctx context.Context, sessions []Session, records []SessionRecord, stats *Stats) error {
	archived := make(map[string]SessionRecord, len(records))
	for _, rec := range records {
		archived[rec.SessionID] = rec
	}

	missing := 0
	for _, s := range sessions {
		rec, ok := archived[s.SessionID]
		if !ok {
			// The archive is a bounded ring; older sessions may have been
			// evicted when the probe outruns it.
			missing++
			continue
		}
		if rec.SampleCount != len(s.Signal) {
			return fmt.Errorf("session %s archived with %d samples, expected %d",
				s.SessionID, rec.SampleCount, len(s.Signal))
		}
		stats.SessionsArchived++
	}

	if stats.SessionsArchived == 0 && len(sessions) > 0 {
		return fmt.Errorf("no exported sessions found in archive")
	}

	logger.Get().Info(ctx, "archive verified",
		logger.Int("archived", stats.SessionsArchived),
		logger.Int("evicted", missing),
	)
	return nil
}
