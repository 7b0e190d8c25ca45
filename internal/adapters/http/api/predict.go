// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/estimate"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/types"
	"github.com/Ayush-07-Mishra/Vasu-Vue/pkg/metrics"
)

// Client-facing error messages, fixed wire contract.
const (
	msgInvalidInput       = "Invalid input"
	msgInsufficientSignal = "Insufficient signal data"
	msgInternalError      = "Internal server error"
)

// PredictDependencies defines the interface for prediction dependencies.
type PredictDependencies interface {
	Predict(ctx context.Context, in model.PredictionInput) (types.Prediction, error)
}

// PredictHandler handles prediction requests.
type PredictHandler struct {
	deps PredictDependencies
}

// NewPredictHandler creates a new prediction handler.
func NewPredictHandler(deps PredictDependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredict handles POST /api/predict requests.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordPredictionError("invalid_input")
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}
	input, err := req.resolve()
	if err != nil {
		metrics.RecordPredictionError("invalid_input")
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	pred, err := h.deps.Predict(r.Context(), input)
	if err != nil {
		if errors.Is(err, estimate.ErrInsufficientSignal) {
			writeError(w, http.StatusBadRequest, msgInsufficientSignal)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	writeJSON(w, http.StatusOK, pred)
}
