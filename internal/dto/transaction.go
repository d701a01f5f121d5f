package dto

import (
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for logging a transaction.
// Amount must be non-negative and the category must be one of the five
// accounting classifications; this is the validation boundary the
// derivation engine relies on.
type CreateTransactionRequest struct {
	Date        string                 `json:"date" binding:"required"` // YYYY-MM-DD
	Type        domain.TransactionType `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Account     string                 `json:"account" binding:"required"`
	Category    domain.AccountCategory `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// UpdateTransactionRequest defines the fields that may be changed on an
// existing transaction. Pointers distinguish omitted fields from
// zero-value fields.
type UpdateTransactionRequest struct {
	Date        *string                 `json:"date"` // YYYY-MM-DD
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=DEBIT CREDIT"`
	Amount      *decimal.Decimal        `json:"amount"`
	Description *string                 `json:"description"`
	Account     *string                 `json:"account"`
	Category    *domain.AccountCategory `json:"category" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Account       string          `json:"account"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format("2006-01-02"),
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Description:   txn.Description,
		Account:       txn.Account,
		Category:      string(txn.Category),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
