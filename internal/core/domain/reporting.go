package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
// A positive ledger balance lands in the debit column, a negative one in
// the credit column (as an absolute value); a zero balance shows zero in
// both.
type TrialBalanceRow struct {
	Account  string          `json:"account"`
	Category AccountCategory `json:"category"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
}

// ProfitLossItem is one revenue or expense account's contribution to the
// profit and loss statement. Amount is the absolute ledger balance.
type ProfitLossItem struct {
	Account  string          `json:"account"`
	Category AccountCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitAndLoss is the derived profit and loss statement: one item per
// revenue/expense ledger account plus the resulting net income.
type ProfitAndLoss struct {
	Items     []ProfitLossItem `json:"items"`
	NetIncome decimal.Decimal  `json:"netIncome"`
}
