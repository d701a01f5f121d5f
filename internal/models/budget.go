package models

import "github.com/shopspring/decimal"

// Budget is the persistence shape of a monthly budget. A unique index on
// (user_id, account, month) backs the one-budget-per-account-month rule.
type Budget struct {
	BudgetID string          `json:"budgetID" db:"budget_id"`
	UserID   string          `json:"userID" db:"user_id"`
	Account  string          `json:"account" db:"account"`
	Month    string          `json:"month" db:"month"`
	Amount   decimal.Decimal `json:"amount" db:"amount"`
	AuditFields
}
