package transaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ExportTransactionsInput is the Huma input for exporting transactions.
type ExportTransactionsInput struct {
	StartDate string `query:"startDate" doc:"Inclusive lower bound, YYYY-MM-DD or RFC3339"`
	EndDate   string `query:"endDate" doc:"Inclusive upper bound; a bare date covers the whole day"`
	Type      string `query:"type" doc:"income, expense or all"`
	Format    string `query:"format" doc:"csv (default) or xlsx"`
}

// ExportTransactionsOutput is the Huma output for exporting transactions.
type ExportTransactionsOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// transactionExporter is the interface for exporting transactions.
type transactionExporter interface {
	ExportTransactions(ctx context.Context, params service.ExportParams) (service.Export, error)
}

// ExportTransactionsHandler handles GET /transactions/export.
type ExportTransactionsHandler struct {
	TransactionService transactionExporter
}

// NewExportTransactionsHandler creates a new ExportTransactionsHandler.
func NewExportTransactionsHandler(svc transactionExporter) *ExportTransactionsHandler {
	return &ExportTransactionsHandler{TransactionService: svc}
}

// Register registers the export transactions endpoint with the Huma API.
func (h *ExportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions/export",
		Summary:     "Export transactions",
		Description: "Downloads the filtered transactions, newest first, as CSV or XLSX.",
		Tags:        []string{"Transactions"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Exported document",
				Content: map[string]*huma.MediaType{
					"text/csv": {},
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
				},
			},
		},
	}, h.handle)
}

func (h *ExportTransactionsHandler) handle(ctx context.Context, input *ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("format", input.Format)

	stopTimer := logData.AddTiming("exportTransactionsMs")
	export, err := h.TransactionService.ExportTransactions(ctx, service.ExportParams{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Format:    input.Format,
	})
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "failed to export transactions")
	}

	logData.AddData("exportBytes", len(export.Body))

	return &ExportTransactionsOutput{
		ContentType:        export.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", export.Filename),
		Body:               export.Body,
	}, nil
}
