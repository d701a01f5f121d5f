package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth reports whether s is a calendar month in the YYYY-MM form
// used by Budget.Month. Both the binding layer and the budget service
// validate through this single definition.
func IsValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// Budget is a monthly spending cap for one expense account name.
// Month uses the YYYY-MM form; Spent is derived, never persisted.
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`
	Account  string          `json:"account"` // Matches Transaction.Account names
	Month    string          `json:"month"`   // YYYY-MM
	Amount   decimal.Decimal `json:"amount"`
	AuditFields
}

// BudgetUsage pairs a budget with the spending observed against it.
type BudgetUsage struct {
	Budget    Budget          `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}
