package repositories

import (
	"context"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUser retrieves every transaction for a user within the
	// inclusive date range. A zero from/to leaves that end of the range open.
	// The full snapshot is returned in one call; the derivation views are
	// recomputed from it in full, so there is no pagination contract here.
	FindTransactionsByUser(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error)

	// ListTransactionsByUser retrieves a paginated list of transactions for a
	// user using token-based pagination, newest first.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumExpensesByAccountAndMonth sums expense-category debit amounts for one
	// account name within one calendar month. Used for budget usage.
	SumExpensesByAccountAndMonth(ctx context.Context, userID, account, month string) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
