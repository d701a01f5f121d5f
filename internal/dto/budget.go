package dto

import (
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the payload for creating a monthly budget.
type CreateBudgetRequest struct {
	Account string          `json:"account" binding:"required"`
	Month   string          `json:"month" binding:"required,month"` // YYYY-MM
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateBudgetRequest defines the fields that may be changed on a budget.
type UpdateBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Month string `form:"month"` // YYYY-MM; defaults to the current month
}

// BudgetResponse defines the data returned for a budget, including the
// derived spend against it.
type BudgetResponse struct {
	BudgetID  string          `json:"budgetID"`
	Account   string          `json:"account"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

// ToBudgetResponse converts a domain budget usage to its response DTO.
func ToBudgetResponse(usage domain.BudgetUsage) BudgetResponse {
	return BudgetResponse{
		BudgetID:  usage.Budget.BudgetID,
		Account:   usage.Budget.Account,
		Month:     usage.Budget.Month,
		Amount:    usage.Budget.Amount,
		Spent:     usage.Spent,
		Remaining: usage.Remaining,
	}
}

// ToBudgetResponses converts a slice of budget usages to DTOs.
func ToBudgetResponses(usages []domain.BudgetUsage) []BudgetResponse {
	responses := make([]BudgetResponse, len(usages))
	for i, usage := range usages {
		responses[i] = ToBudgetResponse(usage)
	}
	return responses
}
