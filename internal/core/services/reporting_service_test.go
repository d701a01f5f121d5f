package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.ReportingSvcFacade
	userID      string
	from        time.Time
	to          time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo)
	suite.userID = uuid.NewString()
	suite.from = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) snapshot() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "t1",
			UserID:        suite.userID,
			Date:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Type:          domain.Credit,
			Amount:        decimal.NewFromInt(1000),
			Description:   "Invoice paid",
			Account:       "Sales",
			Category:      domain.Revenue,
		},
		{
			TransactionID: "t2",
			UserID:        suite.userID,
			Date:          time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Type:          domain.Debit,
			Amount:        decimal.NewFromInt(300),
			Description:   "March rent",
			Account:       "Rent",
			Category:      domain.Expense,
		},
	}
}

func (suite *ReportingServiceTestSuite) TestJournal_OrderedByDate() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID, suite.from, suite.to).
		Return(suite.snapshot(), nil).Once()

	entries, err := suite.service.Journal(ctx, suite.userID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	// Rent on the 2nd comes before Sales on the 5th.
	suite.Equal("t2", entries[0].TransactionID)
	suite.Equal("Rent", entries[0].DebitAccount)
	suite.Equal("Cash/Bank", entries[0].CreditAccount)
	suite.Equal("t1", entries[1].TransactionID)
	suite.Equal("Cash/Bank", entries[1].DebitAccount)
	suite.Equal("Sales", entries[1].CreditAccount)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestLedger_SortedByName() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID, suite.from, suite.to).
		Return(suite.snapshot(), nil).Once()

	accounts, err := suite.service.Ledger(ctx, suite.userID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 2)
	suite.Equal("Rent", accounts[0].Name)
	suite.True(accounts[0].Balance.Equal(decimal.NewFromInt(300)))
	suite.Equal("Sales", accounts[1].Name)
	suite.True(accounts[1].Balance.Equal(decimal.NewFromInt(1000)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID, suite.from, suite.to).
		Return(suite.snapshot(), nil).Once()

	rows, err := suite.service.TrialBalance(ctx, suite.userID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Rent", rows[0].Account)
	suite.True(rows[0].Debit.Equal(decimal.NewFromInt(300)))
	suite.True(rows[0].Credit.IsZero())
	// The column split follows the sign of the signed balance, so the
	// credit-normal Sales account still lands in the debit column.
	suite.Equal("Sales", rows[1].Account)
	suite.True(rows[1].Debit.Equal(decimal.NewFromInt(1000)))
	suite.True(rows[1].Credit.IsZero())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID, suite.from, suite.to).
		Return(suite.snapshot(), nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.userID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Items, 2)
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(700)))
}

func (suite *ReportingServiceTestSuite) TestEmptySnapshot() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID, suite.from, suite.to).
		Return([]domain.Transaction{}, nil).Times(4)

	entries, err := suite.service.Journal(ctx, suite.userID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Empty(entries)

	accounts, err := suite.service.Ledger(ctx, suite.userID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Empty(accounts)

	rows, err := suite.service.TrialBalance(ctx, suite.userID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Empty(rows)

	report, err := suite.service.ProfitAndLoss(ctx, suite.userID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Empty(report.Items)
	suite.True(report.NetIncome.IsZero())
}

func (suite *ReportingServiceTestSuite) TestSnapshotLoadError() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID, suite.from, suite.to).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.TrialBalance(ctx, suite.userID, suite.from, suite.to)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
