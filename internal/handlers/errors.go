// Package handlers holds what the versioned handler packages share: the
// error body every endpoint returns and the mapping from service errors to
// HTTP statuses.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ErrorBody is the body of every error response.
type ErrorBody struct {
	Message string `json:"message" doc:"Human readable error message"`
	status  int
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

var installErrorModel sync.Once

// NewConfig is huma's default config without $schema links in response
// bodies, with the ErrorBody error model installed.
func NewConfig(title, version string) huma.Config {
	InstallErrorModel()
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil
	return config
}

// InstallErrorModel replaces huma's problem+json errors with ErrorBody.
// Request schema failures (422 in huma) are reported as 400 with their
// details folded into the message.
func InstallErrorModel() {
	installErrorModel.Do(func() {
		huma.NewError = newError
	})
}

func newError(status int, message string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		if len(details) > 0 {
			message += ": " + strings.Join(details, "; ")
		}
	}
	return &ErrorBody{Message: message, status: status}
}

// ServiceError converts an error returned by the service layer. Client
// faults keep their message; anything else is recorded on the request log
// and answered with the generic message.
func ServiceError(ctx context.Context, err error, message string) error {
	var validationErr *service.ValidationError
	var filterErr *service.InvalidFilterError
	if errors.As(err, &validationErr) || errors.As(err, &filterErr) {
		return huma.Error400BadRequest(err.Error())
	}

	logging.GetLogData(ctx).SetError(err)
	return huma.Error500InternalServerError(message)
}

// WriteError writes an ErrorBody outside huma, for plain net/http handlers
// and middleware.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Message: message})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
