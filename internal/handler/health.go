package handler

import (
	"net/http"

	"github.com/fantravel1/cheapretreats-sub001/internal/service"
)

// StatusReporter reports catalog load state.
type StatusReporter interface {
	Status() service.Status
}

// HealthHandler serves GET /health
type HealthHandler struct {
	status StatusReporter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(status StatusReporter) *HealthHandler {
	return &HealthHandler{status: status}
}

// Health handles GET /health. It returns 503 until the first catalog has
// loaded; a failed later reload still reports 200 with last_error set,
// since the previous catalog keeps serving.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.status.Status()
	status, code := "ok", http.StatusOK
	if !st.Loaded {
		status, code = "unavailable", http.StatusServiceUnavailable
	}
	WriteJSON(w, code, map[string]interface{}{
		"status":  status,
		"catalog": st,
	})
}
