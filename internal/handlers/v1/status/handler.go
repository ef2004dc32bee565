package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

// Health answers liveness probes. It does not touch storage.
func (h *Handler) Health(w http.ResponseWriter, req *http.Request, _ *logging.LogData) error {
	if req.Method != http.MethodGet {
		handlers.WriteError(w, http.StatusBadRequest, "method not allowed")
		return errors.New("status: method not GET")
	}

	handlers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: "Transaction service is running"})
	return nil
}

// NotFound is the catch-all for paths no route claims.
func (h *Handler) NotFound(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	logData.AddData("notFound", true)
	handlers.WriteError(w, http.StatusNotFound, "Route not found")
	return nil
}
