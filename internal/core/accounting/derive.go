// Package accounting holds the pure derivation engine that turns a flat
// list of dated debit/credit transactions into journal entries, per-account
// ledgers, a trial balance and a profit & loss statement. It performs no
// I/O, keeps no state between calls and never fails: callers are expected
// to validate input at creation time, and malformed input is computed
// through rather than rejected.
package accounting

import (
	"sort"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashBankAccount is the implicit counterpart account used when a single
// transaction is expanded into a two-sided journal entry. The ledger and
// trial balance derivations never see it; only the journal view does.
const CashBankAccount = "Cash/Bank"

// debitNormal is the single source of truth for the balance sign
// convention: debit-normal accounts increase with debits, every other
// category (including unrecognized ones) is treated as credit-normal.
var debitNormal = map[domain.AccountCategory]bool{
	domain.Asset:   true,
	domain.Expense: true,
}

// IsDebitNormal reports whether the category's balance increases with
// debit entries.
func IsDebitNormal(category domain.AccountCategory) bool {
	return debitNormal[category]
}

// CreateJournalEntry maps one transaction into its two-sided journal view
// using the fixed cash-counterpart rule: a debit transaction debits its
// named account and credits Cash/Bank, a credit transaction does the
// opposite. Total function; amount and descriptive fields are copied
// unchanged, without validation.
func CreateJournalEntry(txn domain.Transaction) domain.JournalEntry {
	entry := domain.JournalEntry{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Description:   txn.Description,
		Amount:        txn.Amount,
	}
	if txn.Type == domain.Debit {
		entry.DebitAccount = txn.Account
		entry.CreditAccount = CashBankAccount
	} else {
		entry.DebitAccount = CashBankAccount
		entry.CreditAccount = txn.Account
	}
	return entry
}

// GenerateLedgerAccounts groups transactions by account name and sums
// debits and credits per group. The account's category is taken from the
// first transaction encountered for that name; consistency across the
// group is assumed, not checked. The balance follows the normal-balance
// convention: debitsTotal-creditsTotal for debit-normal categories,
// creditsTotal-debitsTotal otherwise.
func GenerateLedgerAccounts(transactions []domain.Transaction) map[string]domain.LedgerAccount {
	accounts := make(map[string]domain.LedgerAccount)

	for _, txn := range transactions {
		acc, ok := accounts[txn.Account]
		if !ok {
			acc = domain.LedgerAccount{
				Name:         txn.Account,
				Category:     txn.Category,
				DebitsTotal:  decimal.Zero,
				CreditsTotal: decimal.Zero,
			}
		}
		if txn.Type == domain.Debit {
			acc.DebitsTotal = acc.DebitsTotal.Add(txn.Amount)
		} else {
			acc.CreditsTotal = acc.CreditsTotal.Add(txn.Amount)
		}
		accounts[txn.Account] = acc
	}

	for name, acc := range accounts {
		if IsDebitNormal(acc.Category) {
			acc.Balance = acc.DebitsTotal.Sub(acc.CreditsTotal)
		} else {
			acc.Balance = acc.CreditsTotal.Sub(acc.DebitsTotal)
		}
		accounts[name] = acc
	}

	return accounts
}

// GenerateTrialBalance splits every ledger account's balance into a debit
// or credit column: positive balances go to the debit column, negative
// balances to the credit column as absolute values, zero balances show
// zero in both. Rows are ordered by account name so output is
// deterministic across calls.
//
// The trial balance is a diagnostic view, not an enforcement mechanism:
// the totals only match when the underlying transaction set happens to be
// balanced, which nothing here requires.
func GenerateTrialBalance(accounts map[string]domain.LedgerAccount) []domain.TrialBalanceRow {
	rows := make([]domain.TrialBalanceRow, 0, len(accounts))

	for _, acc := range accounts {
		row := domain.TrialBalanceRow{
			Account:  acc.Name,
			Category: acc.Category,
			Debit:    decimal.Zero,
			Credit:   decimal.Zero,
		}
		switch {
		case acc.Balance.IsPositive():
			row.Debit = acc.Balance
		case acc.Balance.IsNegative():
			row.Credit = acc.Balance.Abs()
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Account < rows[j].Account
	})
	return rows
}

// GenerateProfitLoss filters the ledger down to revenue and expense
// accounts and produces one item per account with the absolute balance.
// Net income is total revenue minus total expense. The abs() is a
// normalization, not a sign flip: revenue (credit-normal) and expense
// (debit-normal) balances are already positive for normal activity, so
// the absolute value only matters when an account has accumulated a
// contra balance.
func GenerateProfitLoss(accounts map[string]domain.LedgerAccount) domain.ProfitAndLoss {
	report := domain.ProfitAndLoss{
		Items:     make([]domain.ProfitLossItem, 0),
		NetIncome: decimal.Zero,
	}

	for _, acc := range accounts {
		if acc.Category != domain.Revenue && acc.Category != domain.Expense {
			continue
		}
		amount := acc.Balance.Abs()
		report.Items = append(report.Items, domain.ProfitLossItem{
			Account:  acc.Name,
			Category: acc.Category,
			Amount:   amount,
		})
		if acc.Category == domain.Revenue {
			report.NetIncome = report.NetIncome.Add(amount)
		} else {
			report.NetIncome = report.NetIncome.Sub(amount)
		}
	}

	sort.Slice(report.Items, func(i, j int) bool {
		return report.Items[i].Account < report.Items[j].Account
	})
	return report
}
