package repositories

import (
	"context"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget by its unique identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgetsByUserAndMonth retrieves all budgets for a user in a month (YYYY-MM).
	ListBudgetsByUserAndMonth(ctx context.Context, userID, month string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget persists a new budget. Returns apperrors.ErrDuplicate when a
	// budget for the same user/account/month already exists.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates the amount of an existing budget.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget by ID.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
