// Package types contains common types used across the application
package types

import "time"

// Prediction is the wire shape returned by the prediction endpoint.
type Prediction struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
	Category  string  `json:"category"`
	Success   bool    `json:"success"`
}

// SessionRecord is the wire shape of an archived export session.
type SessionRecord struct {
	SessionID   string    `json:"session_id"`
	SampleCount int       `json:"sample_count"`
	Emotion     string    `json:"emotion,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
}
