package probe

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/logger"
	"github.com/google/uuid"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	profileDivisor     = 3
)

// Signal profiles. The backend maps the signal mean through a fixed linear
// transform (baseline 128 -> 120/80), so each mean band lands in a known
// category. A mean below 128 reads Normal; the 120/80 boundary itself is
// Stage 1; means past ~178 push the diastolic estimate into Stage 2.
const (
	normalMean = 100.0
	stage1Mean = 150.0
	stage2Mean = 210.0

	sampleJitter = 4.0
)

// Profile index cases.
const (
	caseNormal = 0
	caseStage1 = 1
	caseStage2 = 2
)

// Session is a synthetic capture session with its expected classification.
type Session struct {
	SessionID string
	Signal    []float64
	Expected  string
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateSessions creates synthetic capture sessions across the profile mix.
func generateSessions(ctx context.Context, config *Config, stats *Stats) ([]Session, error) {
	logger.Get().Info(ctx, "generating synthetic capture sessions",
		logger.Int("numSessions", config.NumSessions),
		logger.Int("samples", config.Samples),
	)

	sessions := make([]Session, config.NumSessions)
	for i := 0; i < config.NumSessions; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sessions[i] = generateSingleSession(config.Samples)
	}

	stats.SessionsGenerated = len(sessions)
	logger.Get().Info(ctx, "generated sessions successfully", logger.Int("count", len(sessions)))

	return sessions, nil
}

// generateSingleSession creates one session with a randomly chosen profile.
func generateSingleSession(samples int) Session {
	mean, expected := pickProfile()

	signal := make([]float64, samples)
	for i := range signal {
		// Symmetric jitter keeps the signal mean inside the profile band.
		signal[i] = mean + (getRandomFloat()*2-1)*sampleJitter
	}

	return Session{
		SessionID: "probe-" + uuid.New().String(),
		Signal:    signal,
		Expected:  expected,
	}
}

// pickProfile selects a signal mean and the category it must classify as.
func pickProfile() (float64, string) {
	n, _ := rand.Int(rand.Reader, big.NewInt(profileDivisor))
	switch n.Int64() {
	case caseNormal:
		return normalMean, "Normal"
	case caseStage1:
		return stage1Mean, "Hypertension Stage 1"
	case caseStage2:
		return stage2Mean, "Hypertension Stage 2"
	default:
		return normalMean, "Normal"
	}
}
