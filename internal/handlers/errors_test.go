package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestInstallErrorModel(t *testing.T) {
	InstallErrorModel()

	err := huma.NewError(http.StatusNotFound, "missing")
	assert.Equal(t, http.StatusNotFound, err.GetStatus())
	assert.Equal(t, "missing", err.Error())

	err = huma.NewError(http.StatusUnprocessableEntity, "validation failed",
		&huma.ErrorDetail{Message: "expected number", Location: "body.amount"})
	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
	assert.Contains(t, err.Error(), "validation failed: expected number")
	assert.Contains(t, err.Error(), "body.amount")
}

func TestServiceError_ClientFaults(t *testing.T) {
	InstallErrorModel()
	ctx := context.Background()

	err := ServiceError(ctx, &service.ValidationError{Field: "amount", Reason: "must not be negative"}, "failed")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, "invalid amount: must not be negative", err.Error())

	err = ServiceError(ctx, &service.InvalidFilterError{Param: "date", Reason: "bad"}, "failed")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestServiceError_HidesInternalDetail(t *testing.T) {
	InstallErrorModel()
	logData := logging.NewLogData(logrus.New())
	ctx := logging.WithLogData(context.Background(), logData)
	cause := &service.PersistenceError{Op: "list", Err: errors.New("password authentication failed")}

	err := ServiceError(ctx, cause, "failed to list transactions")

	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	assert.Equal(t, "failed to list transactions", err.Error())
	assert.Equal(t, cause, logData.Err())
}

func TestNewConfig_DropsSchemaLinks(t *testing.T) {
	config := NewConfig("Test API", "1.0.0")

	assert.Empty(t, config.CreateHooks)
	assert.Equal(t, "/openapi", config.OpenAPIPath)
}
