package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/accounting"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portsrepo "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/repositories"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
)

// reportingService implements ReportingSvcFacade. Each call loads the
// full transaction snapshot for the period and re-derives the requested
// view from scratch; with one transaction log per user the snapshots
// stay small enough that caching isn't worth the staleness risk.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) loadSnapshot(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByUser(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transaction snapshot",
			slog.String("user_id", userID),
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

// Journal returns the two-sided journal view of the period's transactions,
// ordered by date then creation time.
func (s *reportingService) Journal(ctx context.Context, userID string, from, to time.Time) ([]domain.JournalEntry, error) {
	txns, err := s.loadSnapshot(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(txns))
	for i, txn := range txns {
		entries[i] = accounting.CreateJournalEntry(txn)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	s.LogInfo(ctx, "Journal generated", slog.Int("entry_count", len(entries)))
	return entries, nil
}

// Ledger returns the derived ledger accounts, ordered by account name.
func (s *reportingService) Ledger(ctx context.Context, userID string, from, to time.Time) ([]domain.LedgerAccount, error) {
	txns, err := s.loadSnapshot(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	byName := accounting.GenerateLedgerAccounts(txns)
	accounts := make([]domain.LedgerAccount, 0, len(byName))
	for _, account := range byName {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	s.LogInfo(ctx, "Ledger generated", slog.Int("account_count", len(accounts)))
	return accounts, nil
}

// TrialBalance returns the trial balance rows for the period.
func (s *reportingService) TrialBalance(ctx context.Context, userID string, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	txns, err := s.loadSnapshot(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	rows := accounting.GenerateTrialBalance(accounting.GenerateLedgerAccounts(txns))
	s.LogInfo(ctx, "Trial balance generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss returns the P&L statement for the period.
func (s *reportingService) ProfitAndLoss(ctx context.Context, userID string, from, to time.Time) (domain.ProfitAndLoss, error) {
	txns, err := s.loadSnapshot(ctx, userID, from, to)
	if err != nil {
		return domain.ProfitAndLoss{}, err
	}

	report := accounting.GenerateProfitLoss(accounting.GenerateLedgerAccounts(txns))
	s.LogInfo(ctx, "Profit and loss generated",
		slog.Int("item_count", len(report.Items)),
		slog.String("net_income", report.NetIncome.String()))
	return report, nil
}
