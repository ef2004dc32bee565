package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/service"
)

func TestHTTP_ListTransactions(t *testing.T) {
	first := sampleTransaction("newer")
	second := sampleTransaction("older")

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return([]service.Transaction{first, second}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "newer", body[0].Description)
	assert.Equal(t, "older", body[1].Description)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return(nil, errors.New("connection reset"))

	resp := newTestAPI(t, mockSvc).Get("/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection reset")
}

func TestHTTP_SearchTransactions_PassesParams(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("SearchTransactions", mock.Anything, service.SearchParams{Date: "2023-10-01", Type: "income"}).
		Return([]service.Transaction{sampleTransaction("match")}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions/search?date=2023-10-01&type=income")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "match", body[0].Description)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SearchTransactions_InvalidFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("SearchTransactions", mock.Anything, mock.Anything).
		Return(nil, &service.InvalidFilterError{Param: "type", Reason: "must be one of: income, expense, all"})

	resp := newTestAPI(t, mockSvc).Get("/transactions/search?type=gift")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"message":"invalid type: must be one of: income, expense, all"}`, resp.Body.String())
}
