package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the accounting direction of a transaction
// against its named account.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// AccountCategory is the accounting classification of the account a
// transaction posts to. It governs the sign convention used when ledger
// balances are derived.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// Transaction is a single dated debit or credit against a named account.
// Amount is always non-negative; the direction comes from Type. The account
// name is free text, not a foreign key into a fixed chart of accounts.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owner of the transaction
	Date          time.Time       `json:"date"`          // Calendar date the transaction occurred
	Type          TransactionType `json:"type"`          // DEBIT or CREDIT
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; enforced at creation
	Description   string          `json:"description"`
	Account       string          `json:"account"`  // Free-text account name (grouping key for the ledger)
	Category      AccountCategory `json:"category"` // ASSET, LIABILITY, EQUITY, REVENUE or EXPENSE
	AuditFields
}
