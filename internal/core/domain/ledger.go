package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerAccount aggregates every transaction sharing an account name into
// running debit/credit totals and a signed balance. It is fully recomputed
// from the transaction list on every derivation pass and has no identity
// beyond its name.
type LedgerAccount struct {
	Name         string          `json:"name"`
	Category     AccountCategory `json:"category"`
	DebitsTotal  decimal.Decimal `json:"debitsTotal"`
	CreditsTotal decimal.Decimal `json:"creditsTotal"`
	// Balance is signed: positive for normal activity, negative when the
	// account has accumulated a contra balance.
	Balance decimal.Decimal `json:"balance"`
}

// JournalEntry is the two-sided (debit/credit) view of a single
// transaction, with the implicit cash counterpart filled in.
type JournalEntry struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
}
