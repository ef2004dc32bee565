package transaction

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

func TestHTTP_ExportTransactions_CSV(t *testing.T) {
	params := service.ExportParams{StartDate: "2023-10-01", EndDate: "2023-10-31", Type: "expense"}
	csvBody := "id,type,amount,description,date\n"

	mockSvc := new(mockTransactionService)
	mockSvc.On("ExportTransactions", mock.Anything, params).Return(service.Export{
		Filename:    "transactions.csv",
		ContentType: "text/csv",
		Body:        []byte(csvBody),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/transactions/export?startDate=2023-10-01&endDate=2023-10-31&type=expense")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transactions.csv"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, csvBody, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExportTransactions_InvalidRange(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ExportTransactions", mock.Anything, mock.Anything).
		Return(service.Export{}, &service.InvalidFilterError{Param: "startDate", Reason: "must not be after endDate"})

	resp := newTestAPI(t, mockSvc).Get("/transactions/export?startDate=2023-10-31&endDate=2023-10-01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"message":"invalid startDate: must not be after endDate"}`, resp.Body.String())
}
