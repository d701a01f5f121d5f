package repositories

import (
	"context"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
)

// GoalReader defines read operations for savings goal data.
type GoalReader interface {
	// FindGoalByID retrieves a specific savings goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error)

	// ListGoalsByUser retrieves all savings goals for a user.
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// GoalWriter defines write operations for savings goal data.
type GoalWriter interface {
	// SaveGoal persists a new savings goal.
	SaveGoal(ctx context.Context, goal domain.SavingsGoal) error

	// UpdateGoal updates the mutable fields of an existing goal, including
	// its saved amount.
	UpdateGoal(ctx context.Context, goal domain.SavingsGoal) error

	// DeleteGoal removes a goal by ID.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all savings goal repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
