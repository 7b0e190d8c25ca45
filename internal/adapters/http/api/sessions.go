// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
)

// defaultSessionsLimit applies when no limit parameter is given.
const defaultSessionsLimit = 20

// SessionsDependencies defines the interface for session queries.
type SessionsDependencies interface {
	RecentSessions(ctx context.Context, n int) ([]SessionRecord, error)
}

// SessionsHandler handles recent-session requests.
type SessionsHandler struct {
	deps     SessionsDependencies
	maxLimit int
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionsDependencies, maxLimit int) *SessionsHandler {
	return &SessionsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetSessions handles GET /api/sessions?limit=N requests.
func (h *SessionsHandler) HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := defaultSessionsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, msgInvalidInput)
			return
		}
		n = parsed
	}
	if n > h.maxLimit {
		n = h.maxLimit
	}
	records, err := h.deps.RecentSessions(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if records == nil {
		records = []SessionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
