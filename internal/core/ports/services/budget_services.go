package services

import (
	"context"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
)

// BudgetSvcFacade exposes monthly budget operations.
type BudgetSvcFacade interface {
	// CreateBudget validates and persists a new monthly budget.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetUsage retrieves one budget with its derived spend.
	GetBudgetUsage(ctx context.Context, userID, budgetID string) (*domain.BudgetUsage, error)

	// ListBudgetUsage retrieves all of the user's budgets for a month with
	// their derived spend.
	ListBudgetUsage(ctx context.Context, userID, month string) ([]domain.BudgetUsage, error)

	// UpdateBudget changes the amount of an existing budget.
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes one of the user's budgets.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
