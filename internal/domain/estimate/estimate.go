// Package estimate derives a blood-pressure reading from a raw rPPG signal.
//
// The estimate is a synthetic linear transform of the signal mean, not a
// trained model; it exists so the capture UI has plausible numbers to render.
package estimate

import (
	"context"
	"fmt"
	"math"
)

// Default estimator parameters. The baseline maps a mid-scale (128) pixel
// mean to the textbook 120/80 reading; gains and clamps keep the output
// inside a plausible adult range.
const (
	defaultMinSamples = 100

	defaultSignalBaseline = 128.0
	defaultSystolicBase   = 120.0
	defaultDiastolicBase  = 80.0
	defaultSystolicGain   = 0.3
	defaultDiastolicGain  = 0.2
	defaultSystolicFloor  = 90.0
	defaultSystolicCeil   = 160.0
	defaultDiastolicFloor = 60.0
	defaultDiastolicCeil  = 100.0
)

// Reading is an estimated systolic/diastolic pair in mmHg.
type Reading struct {
	Systolic  float64
	Diastolic float64
}

// Estimator derives a Reading from a signal.
type Estimator interface {
	// Estimate computes a reading, honoring ctx for cancellation.
	Estimate(ctx context.Context, signal []float64) (Reading, error)
}

// LinearEstimator implements Estimator with a clamped linear transform of
// the signal mean.
type LinearEstimator struct {
	minSamples int

	signalBaseline float64
	systolicBase   float64
	diastolicBase  float64
	systolicGain   float64
	diastolicGain  float64

	systolicFloor  float64
	systolicCeil   float64
	diastolicFloor float64
	diastolicCeil  float64
}

// NewLinearEstimator creates a linear estimator with configuration options.
func NewLinearEstimator(opts ...Option) *LinearEstimator {
	e := &LinearEstimator{
		minSamples:     defaultMinSamples,
		signalBaseline: defaultSignalBaseline,
		systolicBase:   defaultSystolicBase,
		diastolicBase:  defaultDiastolicBase,
		systolicGain:   defaultSystolicGain,
		diastolicGain:  defaultDiastolicGain,
		systolicFloor:  defaultSystolicFloor,
		systolicCeil:   defaultSystolicCeil,
		diastolicFloor: defaultDiastolicFloor,
		diastolicCeil:  defaultDiastolicCeil,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// MinSamples returns the minimum signal length the estimator accepts.
func (e *LinearEstimator) MinSamples() int {
	return e.minSamples
}

// Estimate computes a reading from the given signal.
func (e *LinearEstimator) Estimate(ctx context.Context, signal []float64) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, fmt.Errorf("estimate cancelled: %w", err)
	}
	if len(signal) < e.minSamples {
		return Reading{}, fmt.Errorf("%w: got %d samples, need %d", ErrInsufficientSignal, len(signal), e.minSamples)
	}

	mean := mean(signal)
	systolic := clamp(e.systolicBase+(mean-e.signalBaseline)*e.systolicGain, e.systolicFloor, e.systolicCeil)
	diastolic := clamp(e.diastolicBase+(mean-e.signalBaseline)*e.diastolicGain, e.diastolicFloor, e.diastolicCeil)

	return Reading{Systolic: systolic, Diastolic: diastolic}, nil
}

func mean(signal []float64) float64 {
	var sum float64
	for _, v := range signal {
		sum += v
	}
	return sum / float64(len(signal))
}

func clamp(v, floor, ceil float64) float64 {
	return math.Min(ceil, math.Max(floor, v))
}
