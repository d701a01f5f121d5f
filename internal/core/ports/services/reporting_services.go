package services

import (
	"context"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
)

// ReportingSvcFacade derives the bookkeeping views from a user's
// transaction snapshot. Every call loads the full set of transactions
// for the period and re-derives from scratch; nothing is cached or
// updated incrementally.
type ReportingSvcFacade interface {
	// Journal returns the two-sided journal entries for the period.
	Journal(ctx context.Context, userID string, from, to time.Time) ([]domain.JournalEntry, error)

	// Ledger returns the derived ledger accounts for the period, ordered
	// by account name.
	Ledger(ctx context.Context, userID string, from, to time.Time) ([]domain.LedgerAccount, error)

	// TrialBalance returns trial balance rows for the period.
	TrialBalance(ctx context.Context, userID string, from, to time.Time) ([]domain.TrialBalanceRow, error)

	// ProfitAndLoss returns the P&L statement for the period.
	ProfitAndLoss(ctx context.Context, userID string, from, to time.Time) (domain.ProfitAndLoss, error)
}
