// Package model contains domain models passed between layers.
package model

import "time"

// PredictionInput is the tagged union of the two request shapes accepted by
// the prediction endpoint. The HTTP layer resolves the raw body into exactly
// one variant before any business logic runs.
type PredictionInput interface {
	isPredictionInput()
}

// SignalSample is the rPPG-signal request shape: an opaque numeric time
// series, plus the emotion label the capture UI attaches to it.
type SignalSample struct {
	Signal  []float64
	Emotion string
}

func (SignalSample) isPredictionInput() {}

// DirectReading is the legacy request shape providing systolic and diastolic
// values directly, retained for backward compatibility.
type DirectReading struct {
	Systolic  float64
	Diastolic float64
}

func (DirectReading) isPredictionInput() {}

// Session represents one exported capture session.
type Session struct {
	SessionID   string    // client-provided or generated; used for idempotency
	SampleCount int       // number of records in the export payload
	Emotion     string    // emotion label active during the session, if any
	ReceivedAt  time.Time // server receive time
}
