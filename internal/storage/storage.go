package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/memory"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Storage is created once at startup and shared by all requests.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	if env.StorageBackend == config.StorageBackendMemory {
		return NewMemoryStorage(), nil
	}

	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
	}, nil
}

// NewMemoryStorage returns a Storage backed by an empty in-process table.
func NewMemoryStorage() *Storage {
	return &Storage{Transactions: memory.NewTransactionsTable()}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
