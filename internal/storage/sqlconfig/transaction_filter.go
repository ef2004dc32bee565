package sqlconfig

import (
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
)

// TransactionFilter is a predicate over stored transactions. The set of
// implementations is closed: AllTransactions, ByDate, ByDateRange, ByType
// and Combined.
type TransactionFilter interface {
	// Matches reports whether the transaction satisfies the predicate.
	Matches(t *Transaction) bool

	// where returns the SQL condition, or nil when every row matches.
	where() bob.Expression
}

// AllTransactions matches every record.
type AllTransactions struct{}

func (AllTransactions) Matches(*Transaction) bool { return true }

func (AllTransactions) where() bob.Expression { return nil }

// ByDate matches one calendar day: [Start, Start+1 day).
// Start is expected to be midnight in the reference location.
type ByDate struct {
	Start time.Time
}

// End is the exclusive upper bound, midnight of the following day.
func (f ByDate) End() time.Time {
	return f.Start.AddDate(0, 0, 1)
}

func (f ByDate) Matches(t *Transaction) bool {
	return !t.Date.Before(f.Start) && t.Date.Before(f.End())
}

func (f ByDate) where() bob.Expression {
	return psql.And(
		psql.Quote("date").GTE(psql.Arg(f.Start)),
		psql.Quote("date").LT(psql.Arg(f.End())),
	)
}

// ByDateRange matches [Start, End], inclusive on both ends.
// A zero bound leaves that side of the range open.
type ByDateRange struct {
	Start time.Time
	End   time.Time
}

func (f ByDateRange) Matches(t *Transaction) bool {
	if !f.Start.IsZero() && t.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.Date.After(f.End) {
		return false
	}
	return true
}

func (f ByDateRange) where() bob.Expression {
	var conditions []bob.Expression
	if !f.Start.IsZero() {
		conditions = append(conditions, psql.Quote("date").GTE(psql.Arg(f.Start)))
	}
	if !f.End.IsZero() {
		conditions = append(conditions, psql.Quote("date").LTE(psql.Arg(f.End)))
	}
	return and(conditions)
}

// ByType matches an exact transaction type.
type ByType struct {
	Type TransactionType
}

func (f ByType) Matches(t *Transaction) bool {
	return t.Type == f.Type
}

func (f ByType) where() bob.Expression {
	return psql.Quote("type").EQ(psql.Arg(string(f.Type)))
}

// Combined is the conjunction of its filters. An empty Combined matches everything.
type Combined struct {
	Filters []TransactionFilter
}

func (f Combined) Matches(t *Transaction) bool {
	for _, filter := range f.Filters {
		if !filter.Matches(t) {
			return false
		}
	}
	return true
}

func (f Combined) where() bob.Expression {
	var conditions []bob.Expression
	for _, filter := range f.Filters {
		if condition := filter.where(); condition != nil {
			conditions = append(conditions, condition)
		}
	}
	return and(conditions)
}

func and(conditions []bob.Expression) bob.Expression {
	switch len(conditions) {
	case 0:
		return nil
	case 1:
		return conditions[0]
	default:
		return psql.And(conditions...)
	}
}
