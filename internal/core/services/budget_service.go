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
)

// budgetService implements BudgetSvcFacade. Spend against a budget is
// derived from expense transactions at read time, never stored.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	txnRepo    portsrepo.TransactionReader
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, txnRepo: txnRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if !domain.IsValidMonth(req.Month) {
		return nil, apperrors.NewAppError(400, "month must be in YYYY-MM format", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Account:  req.Account,
		Month:    req.Month,
		Amount:   req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("user_id", userID),
			slog.String("account", req.Account),
			slog.String("month", req.Month))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

func (s *budgetService) findOwnedBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return budget, nil
}

func (s *budgetService) usage(ctx context.Context, budget domain.Budget) (*domain.BudgetUsage, error) {
	spent, err := s.txnRepo.SumExpensesByAccountAndMonth(ctx, budget.UserID, budget.Account, budget.Month)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive budget spend", slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to derive budget spend: %w", err)
	}
	return &domain.BudgetUsage{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Amount.Sub(spent),
	}, nil
}

func (s *budgetService) GetBudgetUsage(ctx context.Context, userID, budgetID string) (*domain.BudgetUsage, error) {
	budget, err := s.findOwnedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	return s.usage(ctx, *budget)
}

func (s *budgetService) ListBudgetUsage(ctx context.Context, userID, month string) ([]domain.BudgetUsage, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !domain.IsValidMonth(month) {
		return nil, apperrors.NewAppError(400, "month must be in YYYY-MM format", apperrors.ErrValidation)
	}

	budgets, err := s.budgetRepo.ListBudgetsByUserAndMonth(ctx, userID, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("user_id", userID), slog.String("month", month))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	usages := make([]domain.BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		usage, err := s.usage(ctx, budget)
		if err != nil {
			return nil, err
		}
		usages = append(usages, *usage)
	}
	return usages, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.findOwnedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewAppError(400, "amount must be positive", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	s.LogInfo(ctx, "Budget updated", slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if _, err := s.findOwnedBudget(ctx, userID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
