package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{"id", "type", "amount", "description", "date", "created_at"}

var _ ITransactionTable = (*TransactionsTable)(nil)

// transactionRow mirrors the transactions table columns returned by queries.
type transactionRow struct {
	ID          uuid.UUID       `db:"id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	columns := []string{"type", "amount", "description"}
	values := []bob.Expression{
		psql.Arg(string(create.Type)),
		psql.Arg(create.Amount),
		psql.Arg(create.Description),
	}
	if !create.Date.IsZero() {
		columns = append(columns, "date")
		values = append(values, psql.Arg(create.Date))
	}

	query := psql.Insert(
		im.Into(psql.Quote(transactionsTableName), columns...),
		im.Values(values...),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

// List returns transactions matching the filter, newest first. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTableName)),
	}
	if filter != nil {
		if condition := filter.where(); condition != nil {
			queryMods = append(queryMods, sm.Where(condition))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("seq")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// DeleteByID removes a transaction and returns it, or nil if no row matched.
func (t *TransactionsTable) DeleteByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Delete(
		dm.From(psql.Quote(transactionsTableName)),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:          row.ID,
		Type:        TransactionType(row.Type),
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
