// Package memory provides in-memory repository implementations, used by
// tests and local development without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/apperrors"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portsrepo "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/repositories"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// TransactionStore is an in-memory implementation of the transaction
// repository, safe for concurrent use.
type TransactionStore struct {
	mu   sync.RWMutex
	txns map[string]domain.Transaction
}

// NewTransactionStore creates an empty in-memory transaction store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		txns: make(map[string]domain.Transaction),
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionStore)(nil)

func (s *TransactionStore) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.txns[txn.TransactionID]; exists {
		return apperrors.ErrDuplicate
	}
	s.txns[txn.TransactionID] = txn
	return nil
}

func (s *TransactionStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, exists := s.txns[transactionID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (s *TransactionStore) FindTransactionsByUser(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Transaction
	for _, txn := range s.txns {
		if txn.UserID != userID {
			continue
		}
		if !from.IsZero() && txn.Date.Before(from) {
			continue
		}
		if !to.IsZero() && txn.Date.After(to) {
			continue
		}
		result = append(result, txn)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *TransactionStore) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.RLock()
	var all []domain.Transaction
	for _, txn := range s.txns {
		if txn.UserID == userID {
			all = append(all, txn)
		}
	}
	s.mu.RUnlock()

	// Newest first, matching the SQL repository's ordering.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := 0
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		for i, txn := range all {
			if txn.Date.Before(lastDate) || (txn.Date.Equal(lastDate) && txn.CreatedAt.Before(lastCreatedAt)) {
				start = i
				break
			}
			start = len(all)
		}
	}

	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	page := all[start:end]

	var nextTokenVal *string
	if end < len(all) && len(page) > 0 {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
	}

	return page, nextTokenVal, nil
}

func (s *TransactionStore) SumExpensesByAccountAndMonth(ctx context.Context, userID, account, month string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := decimal.Zero
	for _, txn := range s.txns {
		if txn.UserID != userID || txn.Account != account {
			continue
		}
		if txn.Category != domain.Expense || txn.Type != domain.Debit {
			continue
		}
		if txn.Date.Format("2006-01") != month {
			continue
		}
		sum = sum.Add(txn.Amount)
	}
	return sum, nil
}

func (s *TransactionStore) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.txns[txn.TransactionID]; !exists {
		return apperrors.ErrNotFound
	}
	s.txns[txn.TransactionID] = txn
	return nil
}

func (s *TransactionStore) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.txns[transactionID]; !exists {
		return apperrors.ErrNotFound
	}
	delete(s.txns, transactionID)
	return nil
}
