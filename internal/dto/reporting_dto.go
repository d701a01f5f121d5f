package dto

import (
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams are the shared query parameters for the report views.
type ReportPeriodParams struct {
	From string `form:"fromDate"` // YYYY-MM-DD, optional
	To   string `form:"toDate"`   // YYYY-MM-DD, optional
}

// JournalEntryResponse is one two-sided journal row.
type JournalEntryResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
}

// JournalResponse is the journal report view.
type JournalResponse struct {
	FromDate string                 `json:"fromDate,omitempty"`
	ToDate   string                 `json:"toDate,omitempty"`
	Entries  []JournalEntryResponse `json:"entries"`
}

// LedgerAccountResponse is one derived ledger account.
type LedgerAccountResponse struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	DebitsTotal  decimal.Decimal `json:"debitsTotal"`
	CreditsTotal decimal.Decimal `json:"creditsTotal"`
	Balance      decimal.Decimal `json:"balance"`
}

// LedgerResponse is the ledger report view.
type LedgerResponse struct {
	FromDate string                  `json:"fromDate,omitempty"`
	ToDate   string                  `json:"toDate,omitempty"`
	Accounts []LedgerAccountResponse `json:"accounts"`
}

// TrialBalanceRowResponse represents a row in the trial balance response.
type TrialBalanceRowResponse struct {
	Account  string          `json:"account"`
	Category string          `json:"category"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	FromDate string                    `json:"fromDate,omitempty"`
	ToDate   string                    `json:"toDate,omitempty"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Totals   struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ProfitLossItemResponse is one revenue or expense line.
type ProfitLossItemResponse struct {
	Account  string          `json:"account"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitLossResponse represents the profit and loss report response.
type ProfitLossResponse struct {
	FromDate string                   `json:"fromDate,omitempty"`
	ToDate   string                   `json:"toDate,omitempty"`
	Items    []ProfitLossItemResponse `json:"items"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetIncome     decimal.Decimal `json:"netIncome"`
	} `json:"summary"`
}

func formatReportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// ToJournalResponse converts derived journal entries to the report DTO.
func ToJournalResponse(entries []domain.JournalEntry, from, to time.Time) JournalResponse {
	response := JournalResponse{
		FromDate: formatReportDate(from),
		ToDate:   formatReportDate(to),
		Entries:  make([]JournalEntryResponse, len(entries)),
	}
	for i, entry := range entries {
		response.Entries[i] = JournalEntryResponse{
			TransactionID: entry.TransactionID,
			Date:          entry.Date.Format("2006-01-02"),
			Description:   entry.Description,
			Amount:        entry.Amount,
			DebitAccount:  entry.DebitAccount,
			CreditAccount: entry.CreditAccount,
		}
	}
	return response
}

// ToLedgerResponse converts derived ledger accounts to the report DTO.
// Accounts are emitted in name order.
func ToLedgerResponse(accounts []domain.LedgerAccount, from, to time.Time) LedgerResponse {
	response := LedgerResponse{
		FromDate: formatReportDate(from),
		ToDate:   formatReportDate(to),
		Accounts: make([]LedgerAccountResponse, len(accounts)),
	}
	for i, acc := range accounts {
		response.Accounts[i] = LedgerAccountResponse{
			Name:         acc.Name,
			Category:     string(acc.Category),
			DebitsTotal:  acc.DebitsTotal,
			CreditsTotal: acc.CreditsTotal,
			Balance:      acc.Balance,
		}
	}
	return response
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO
// response, accumulating the column totals.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, from, to time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		FromDate: formatReportDate(from),
		ToDate:   formatReportDate(to),
		Rows:     make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			Account:  row.Account,
			Category: string(row.Category),
			Debit:    row.Debit,
			Credit:   row.Credit,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

// ToProfitLossResponse converts a domain P&L report to a DTO response.
func ToProfitLossResponse(report domain.ProfitAndLoss, from, to time.Time) ProfitLossResponse {
	response := ProfitLossResponse{
		FromDate: formatReportDate(from),
		ToDate:   formatReportDate(to),
		Items:    make([]ProfitLossItemResponse, len(report.Items)),
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	for i, item := range report.Items {
		response.Items[i] = ProfitLossItemResponse{
			Account:  item.Account,
			Category: string(item.Category),
			Amount:   item.Amount,
		}
		if item.Category == domain.Revenue {
			totalRevenue = totalRevenue.Add(item.Amount)
		} else {
			totalExpenses = totalExpenses.Add(item.Amount)
		}
	}

	response.Summary.TotalRevenue = totalRevenue
	response.Summary.TotalExpenses = totalExpenses
	response.Summary.NetIncome = report.NetIncome
	return response
}
