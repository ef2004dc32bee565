package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetSummaryOutput is the Huma output for the summary.
type GetSummaryOutput struct {
	Body Summary
}

// summaryReader is the interface for computing the summary.
type summaryReader interface {
	GetSummary(ctx context.Context) (service.Summary, error)
}

// GetSummaryHandler handles GET /summary.
type GetSummaryHandler struct {
	TransactionService summaryReader
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summaryReader) *GetSummaryHandler {
	return &GetSummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/summary",
		Summary:     "Get summary",
		Description: "Returns separate income and expense totals over every transaction.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, _ *struct{}) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("getSummaryMs")
	summary, err := h.TransactionService.GetSummary(ctx)
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "failed to compute summary")
	}

	return &GetSummaryOutput{Body: Summary{
		Income:  handlers.NewNumber(summary.Income),
		Expense: handlers.NewNumber(summary.Expense),
	}}, nil
}
