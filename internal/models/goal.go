package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// SavingsGoal is the persistence shape of a savings goal.
type SavingsGoal struct {
	GoalID       string          `json:"goalID" db:"goal_id"`
	UserID       string          `json:"userID" db:"user_id"`
	Name         string          `json:"name" db:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount" db:"target_amount"`
	SavedAmount  decimal.Decimal `json:"savedAmount" db:"saved_amount"`
	TargetDate   sql.NullTime    `json:"targetDate" db:"target_date"`
	AuditFields
}
