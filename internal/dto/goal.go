package dto

import (
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the payload for creating a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetDate   *string         `json:"targetDate"` // YYYY-MM-DD, optional
}

// UpdateGoalRequest defines the fields that may be changed on a goal.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	TargetDate   *string          `json:"targetDate"` // YYYY-MM-DD
}

// ContributeGoalRequest adds an amount to a goal's saved total.
type ContributeGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse defines the data returned for a savings goal.
type GoalResponse struct {
	GoalID       string          `json:"goalID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	TargetDate   string          `json:"targetDate,omitempty"`
}

// ToGoalResponse converts a domain.SavingsGoal to its response DTO.
func ToGoalResponse(goal *domain.SavingsGoal) GoalResponse {
	resp := GoalResponse{
		GoalID:       goal.GoalID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		SavedAmount:  goal.SavedAmount,
	}
	if goal.TargetDate != nil {
		resp.TargetDate = goal.TargetDate.Format("2006-01-02")
	}
	return resp
}

// ToGoalResponses converts a slice of domain.SavingsGoal to DTOs.
func ToGoalResponses(goals []domain.SavingsGoal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(&goal)
	}
	return responses
}
