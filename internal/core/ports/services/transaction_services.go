package services

import (
	"context"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
)

// TransactionSvcFacade exposes transaction logging operations.
// This is the validation boundary for the derivation engine: amounts,
// categories and account names are checked here, never downstream.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction for the user.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of the user's transactions.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// UpdateTransaction applies partial updates to one of the user's transactions.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the user's transactions.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
