// Package estimate derives a blood-pressure reading from a raw rPPG signal.
package estimate

// Option applies a configuration option to the LinearEstimator.
type Option func(*LinearEstimator)

// WithMinSamples sets the minimum signal length the estimator accepts.
func WithMinSamples(n int) Option {
	return func(e *LinearEstimator) {
		if n > 0 {
			e.minSamples = n
		}
	}
}

// WithBaseline sets the signal mean that maps to the base reading.
func WithBaseline(baseline float64) Option {
	return func(e *LinearEstimator) {
		e.signalBaseline = baseline
	}
}

// WithBaseReading sets the reading produced by a baseline-mean signal.
func WithBaseReading(systolic, diastolic float64) Option {
	return func(e *LinearEstimator) {
		e.systolicBase = systolic
		e.diastolicBase = diastolic
	}
}

// WithGains sets the per-unit-of-mean gains applied around the baseline.
func WithGains(systolic, diastolic float64) Option {
	return func(e *LinearEstimator) {
		e.systolicGain = systolic
		e.diastolicGain = diastolic
	}
}

// WithSystolicRange sets the clamp applied to systolic estimates.
func WithSystolicRange(floor, ceil float64) Option {
	return func(e *LinearEstimator) {
		if floor < ceil {
			e.systolicFloor = floor
			e.systolicCeil = ceil
		}
	}
}

// WithDiastolicRange sets the clamp applied to diastolic estimates.
func WithDiastolicRange(floor, ceil float64) Option {
	return func(e *LinearEstimator) {
		if floor < ceil {
			e.diastolicFloor = floor
			e.diastolicCeil = ceil
		}
	}
}
