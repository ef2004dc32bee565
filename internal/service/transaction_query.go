package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const (
	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04:05"

	// typeAll is the sentinel that disables type filtering.
	typeAll = "all"
)

// SearchParams are the raw query parameters of a transaction search.
type SearchParams struct {
	Date string
	Type string
}

// ExportParams are the raw query parameters of an export. Format is only
// read by the service; the filter ignores it.
type ExportParams struct {
	StartDate string
	EndDate   string
	Type      string
	Format    string
}

// BuildSearchFilter turns search parameters into a filter. A date selects
// the whole calendar day in loc, [00:00, next 00:00).
func BuildSearchFilter(params SearchParams, loc *time.Location) (sqlconfig.TransactionFilter, error) {
	var filters []sqlconfig.TransactionFilter

	if params.Date != "" {
		date, _, err := parseDate(params.Date, loc)
		if err != nil {
			return nil, &InvalidFilterError{Param: "date", Reason: "must be YYYY-MM-DD or RFC 3339"}
		}
		filters = append(filters, sqlconfig.ByDate{Start: startOfDay(date, loc)})
	}

	typeFilter, err := buildTypeFilter(params.Type)
	if err != nil {
		return nil, err
	}
	if typeFilter != nil {
		filters = append(filters, typeFilter)
	}

	return combine(filters), nil
}

// BuildExportFilter turns export parameters into a filter. The date range is
// closed; a date-only endDate extends to the last instant of that day.
func BuildExportFilter(params ExportParams, loc *time.Location) (sqlconfig.TransactionFilter, error) {
	var filters []sqlconfig.TransactionFilter

	var dateRange sqlconfig.ByDateRange
	if params.StartDate != "" {
		start, _, err := parseDate(params.StartDate, loc)
		if err != nil {
			return nil, &InvalidFilterError{Param: "startDate", Reason: "must be YYYY-MM-DD or RFC 3339"}
		}
		dateRange.Start = start
	}
	if params.EndDate != "" {
		end, dateOnly, err := parseDate(params.EndDate, loc)
		if err != nil {
			return nil, &InvalidFilterError{Param: "endDate", Reason: "must be YYYY-MM-DD or RFC 3339"}
		}
		if dateOnly {
			// Storage keeps microseconds, so this is the last representable instant.
			end = end.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
		dateRange.End = end
	}
	if !dateRange.Start.IsZero() && !dateRange.End.IsZero() && dateRange.Start.After(dateRange.End) {
		return nil, &InvalidFilterError{Param: "startDate", Reason: "must not be after endDate"}
	}
	if !dateRange.Start.IsZero() || !dateRange.End.IsZero() {
		filters = append(filters, dateRange)
	}

	typeFilter, err := buildTypeFilter(params.Type)
	if err != nil {
		return nil, err
	}
	if typeFilter != nil {
		filters = append(filters, typeFilter)
	}

	return combine(filters), nil
}

func buildTypeFilter(value string) (sqlconfig.TransactionFilter, error) {
	if value == "" || value == typeAll {
		return nil, nil
	}
	txType := TransactionType(value)
	if !txType.valid() {
		return nil, &InvalidFilterError{Param: "type", Reason: "must be one of: income, expense, all"}
	}
	return sqlconfig.ByType{Type: transactionTypeToStorage(txType)}, nil
}

func combine(filters []sqlconfig.TransactionFilter) sqlconfig.TransactionFilter {
	switch len(filters) {
	case 0:
		return sqlconfig.AllTransactions{}
	case 1:
		return filters[0]
	default:
		return sqlconfig.Combined{Filters: filters}
	}
}

// parseDate accepts YYYY-MM-DD (midnight in loc), RFC 3339, or a zone-less
// date-time read in loc. dateOnly reports whether the first form matched.
func parseDate(value string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if t, err = time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, true, nil
	}
	if t, err = time.Parse(time.RFC3339Nano, value); err == nil {
		return t, false, nil
	}
	t, err = time.ParseInLocation(localTimeLayout, value, loc)
	return t, false, err
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
