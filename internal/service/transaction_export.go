package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportFormat selects the document produced by an export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"

	exportSheet = "Transactions"
)

var exportHeader = []string{"id", "type", "amount", "description", "date"}

// Export is a rendered document ready to be sent as an attachment.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ParseExportFormat defaults to CSV when value is empty.
func ParseExportFormat(value string) (ExportFormat, error) {
	switch ExportFormat(value) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatXLSX:
		return ExportFormatXLSX, nil
	default:
		return "", &InvalidFilterError{Param: "format", Reason: "must be one of: csv, xlsx"}
	}
}

// ExportCSV renders the header row followed by one row per transaction, in
// the given order. Dates are written as YYYY-MM-DD in loc.
func ExportCSV(transactions []Transaction, loc *time.Location) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return "", err
	}
	for _, t := range transactions {
		if err := w.Write(exportRow(t, loc)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ExportXLSX renders the same rows as ExportCSV into a single-sheet workbook.
func ExportXLSX(transactions []Transaction, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	for i, t := range transactions {
		row := exportRow(t, loc)
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(t Transaction, loc *time.Location) []string {
	return []string{
		t.ID.String(),
		string(t.Type),
		t.Amount.String(),
		t.Description,
		t.Date.In(loc).Format(dateLayout),
	}
}

func renderExport(transactions []Transaction, format ExportFormat, loc *time.Location) (Export, error) {
	if format == ExportFormatXLSX {
		body, err := ExportXLSX(transactions, loc)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Filename:    "transactions.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
		}, nil
	}

	body, err := ExportCSV(transactions, loc)
	if err != nil {
		return Export{}, err
	}
	return Export{
		Filename:    "transactions.csv",
		ContentType: "text/csv",
		Body:        []byte(body),
	}, nil
}
