package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, loc *time.Location) *Service {
	return &Service{
		Transaction: NewTransactionService(store, loc),
	}
}
