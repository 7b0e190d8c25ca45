// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Ayush-07-Mishra/Vasu-Vue/internal/domain/model"
	"github.com/google/uuid"
)

// exportAckMessage is the fixed acknowledgment wire contract.
const exportAckMessage = "Session data exported successfully"

// ExportDependencies defines the interface for export processing dependencies.
type ExportDependencies interface {
	ExportSession(ctx context.Context, sess model.Session) error
}

// ExportHandler handles session export requests.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles POST /api/export requests.
//
// The acknowledgment is unconditional: any body, including a malformed one,
// is answered 200. Archival is best-effort and asynchronous.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req exportRequest
	// A malformed body simply carries no samples.
	_ = json.NewDecoder(r.Body).Decode(&req)

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	sess := model.Session{
		SessionID:   sessionID,
		SampleCount: len(req.Samples),
		Emotion:     req.Emotion,
		ReceivedAt:  time.Now().UTC(),
	}

	// Queue saturation and duplicate ids are logged by the service and do
	// not change the response.
	_ = h.deps.ExportSession(r.Context(), sess)

	writeJSON(w, http.StatusOK, exportResponse{
		Success: true,
		Message: exportAckMessage,
	})
}
