package services

import (
	"context"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
)

// GoalSvcFacade exposes savings goal operations.
type GoalSvcFacade interface {
	// CreateGoal validates and persists a new savings goal.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.SavingsGoal, error)

	// GetGoalByID retrieves one of the user's goals.
	GetGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error)

	// ListGoals retrieves all of the user's goals.
	ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error)

	// UpdateGoal applies partial updates to a goal.
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.SavingsGoal, error)

	// Contribute adds a positive amount to a goal's saved total.
	Contribute(ctx context.Context, userID, goalID string, req dto.ContributeGoalRequest) (*domain.SavingsGoal, error)

	// DeleteGoal removes one of the user's goals.
	DeleteGoal(ctx context.Context, userID, goalID string) error
}
