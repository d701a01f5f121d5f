package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence shape of a logged transaction. Type and
// Category are stored as their string forms (DEBIT/CREDIT and the five
// account classifications).
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	UserID        string          `json:"userID" db:"user_id"`
	Date          time.Time       `json:"date" db:"txn_date"`
	Type          string          `json:"type" db:"txn_type"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Description   string          `json:"description" db:"description"`
	Account       string          `json:"account" db:"account"`
	Category      string          `json:"category" db:"category"`
	AuditFields
}
