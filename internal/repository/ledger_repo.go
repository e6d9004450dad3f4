package repository

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/storage"
)

// LedgerRepository is the append-only sale ledger. Each append re-reads
// the full collection, appends, and rewrites the file, so the stored
// ledger always reflects what callers have been handed back.
type LedgerRepository interface {
	FindAll() ([]model.Transaction, error)
	Append(tx model.Transaction) error
}

type ledgerRepo struct {
	store *storage.Store
}

func NewLedgerRepo(store *storage.Store) LedgerRepository {
	return &ledgerRepo{store: store}
}

// FindAll returns transactions in insertion order. A corrupt file yields
// an empty ledger plus the wrapped storage.ErrCorrupt for the caller to log.
func (r *ledgerRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := r.store.Load(storage.TransactionsFile, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *ledgerRepo) Append(tx model.Transaction) error {
	transactions, err := r.FindAll()
	if err != nil {
		// Unreadable ledger degrades to empty, same as a load would.
		transactions = nil
	}
	transactions = append(transactions, tx)
	return r.store.Save(storage.TransactionsFile, transactions)
}
