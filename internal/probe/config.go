package probe

import "time"

// Config holds configuration for the signal probe run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumSessions int           // Number of capture sessions to simulate
	Samples     int           // Samples per synthetic rPPG signal
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	LogFile     string        // Log file for probe output
	Verbose     bool          // Enable verbose logging
}

// PredictRequest mirrors the POST /api/predict wire shape.
type PredictRequest struct {
	Signal  []float64 `json:"signal"`
	Emotion string    `json:"emotion,omitempty"`
}

// Prediction mirrors the prediction response wire shape.
type Prediction struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
	Category  string  `json:"category"`
	Success   bool    `json:"success"`
}

// ExportRequest mirrors the POST /api/export wire shape.
type ExportRequest struct {
	SessionID string       `json:"session_id"`
	Samples   []SamplePair `json:"samples"`
	Emotion   string       `json:"emotion,omitempty"`
}

// SamplePair is a single exported sample.
type SamplePair struct {
	V float64 `json:"v"`
}

// ExportAck mirrors the export acknowledgment wire shape.
type ExportAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SessionRecord mirrors the GET /api/sessions wire shape.
type SessionRecord struct {
	SessionID   string    `json:"session_id"`
	SampleCount int       `json:"sample_count"`
	Emotion     string    `json:"emotion,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
}

// Stats holds probe statistics.
type Stats struct {
	SessionsGenerated   int
	PredictionsSent     int
	PredictionsOK       int
	PredictionsMismatch int
	PredictionsFailed   int
	ExportsSent         int
	ExportsAcked        int
	SessionsArchived    int
	StartTime           time.Time
	EndTime             time.Time
	Duration            time.Duration
}
