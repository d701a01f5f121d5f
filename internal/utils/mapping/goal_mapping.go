package mapping

import (
	"database/sql"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/models"
)

// ToModelGoal converts a domain SavingsGoal to its model form.
func ToModelGoal(d domain.SavingsGoal) models.SavingsGoal {
	m := models.SavingsGoal{
		GoalID:       d.GoalID,
		UserID:       d.UserID,
		Name:         d.Name,
		TargetAmount: d.TargetAmount,
		SavedAmount:  d.SavedAmount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.TargetDate != nil {
		m.TargetDate = sql.NullTime{Time: *d.TargetDate, Valid: true}
	}
	return m
}

// ToDomainGoal converts a model SavingsGoal to its domain form.
func ToDomainGoal(m models.SavingsGoal) domain.SavingsGoal {
	d := domain.SavingsGoal{
		GoalID:       m.GoalID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		SavedAmount:  m.SavedAmount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.TargetDate.Valid {
		targetDate := m.TargetDate.Time
		d.TargetDate = &targetDate
	}
	return d
}

// ToDomainGoalSlice converts a slice of model SavingsGoals.
func ToDomainGoalSlice(ms []models.SavingsGoal) []domain.SavingsGoal {
	ds := make([]domain.SavingsGoal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}
