package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/apperrors"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portsrepo "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/repositories"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService implements GoalSvcFacade.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new savings goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func parseTargetDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperrors.NewAppError(400, "targetDate must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	return &date, nil
}

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.SavingsGoal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, apperrors.NewAppError(400, "targetAmount must be positive", apperrors.ErrValidation)
	}
	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal := domain.SavingsGoal{
		GoalID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  decimal.Zero,
		TargetDate:   targetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	s.LogInfo(ctx, "Savings goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.SavingsGoal, error) {
	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, apperrors.NewAppError(400, "targetAmount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		targetDate, err := parseTargetDate(req.TargetDate)
		if err != nil {
			return nil, err
		}
		goal.TargetDate = targetDate
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	s.LogInfo(ctx, "Savings goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

func (s *goalService) Contribute(ctx context.Context, userID, goalID string, req dto.ContributeGoalRequest) (*domain.SavingsGoal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "contribution amount must be positive", apperrors.ErrValidation)
	}

	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.SavedAmount = goal.SavedAmount.Add(req.Amount)
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to record goal contribution", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}

	s.LogInfo(ctx, "Goal contribution recorded",
		slog.String("goal_id", goalID),
		slog.String("amount", req.Amount.String()))
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if _, err := s.GetGoalByID(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	s.LogInfo(ctx, "Savings goal deleted", slog.String("goal_id", goalID))
	return nil
}
