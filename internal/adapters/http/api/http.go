// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Predict derives a blood-pressure reading from the given input.
	Predict(ctx context.Context, in model.PredictionInput) (types.Prediction, error)

	// ExportSession submits a session for asynchronous archival.
	ExportSession(ctx context.Context, sess model.Session) error

	// RecentSessions returns up to n archived sessions, newest first.
	RecentSessions(ctx context.Context, n int) ([]types.SessionRecord, error)
}

// Prediction mirrors the read shape returned by prediction queries.
type Prediction = types.Prediction

// SessionRecord mirrors the read shape returned by session queries.
type SessionRecord = types.SessionRecord

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	predictHandler  *PredictHandler
	exportHandler   *ExportHandler
	sessionsHandler *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxSessionsLimit int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		predictHandler:  NewPredictHandler(deps),
		exportHandler:   NewExportHandler(deps),
		sessionsHandler: NewSessionsHandler(deps, maxSessionsLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/predict", MetricsMiddleware(s.predictHandler.HandlePredict, "predict"))
	mux.HandleFunc("/api/export", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("/api/sessions", MetricsMiddleware(s.sessionsHandler.HandleGetSessions, "sessions"))
}

// predictRequest mirrors the OpenAPI schema for POST /api/predict. Pointer
// fields distinguish an absent key from a zero value: the presence of
// "signal" selects the signal branch regardless of its length.
type predictRequest struct {
	Signal    *[]float64 `json:"signal"`
	Emotion   string     `json:"emotion"`
	Systolic  *float64   `json:"systolic"`
	Diastolic *float64   `json:"diastolic"`
}

// resolve maps the wire shape onto the prediction input union.
func (p predictRequest) resolve() (model.PredictionInput, error) {
	if p.Signal != nil {
		return model.SignalSample{Signal: *p.Signal, Emotion: p.Emotion}, nil
	}
	if p.Systolic == nil || p.Diastolic == nil {
		return nil, ErrInvalidInput
	}
	return model.DirectReading{Systolic: *p.Systolic, Diastolic: *p.Diastolic}, nil
}

// exportRequest mirrors the OpenAPI schema for POST /api/export. Samples stay
// opaque; only their count is retained.
type exportRequest struct {
	SessionID string            `json:"session_id"`
	Samples   []json.RawMessage `json:"samples"`
	Emotion   string            `json:"emotion"`
}

type exportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
