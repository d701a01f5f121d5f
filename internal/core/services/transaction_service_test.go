package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/apperrors"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SumExpensesByAccountAndMonth(ctx context.Context, userID, account, month string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, account, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Date:        "2024-03-10",
		Type:        domain.Debit,
		Amount:      decimal.NewFromInt(500),
		Description: "March rent",
		Account:     "Rent",
		Category:    domain.Expense,
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID &&
			txn.Account == "Rent" &&
			txn.Type == domain.Debit &&
			txn.Amount.Equal(decimal.NewFromInt(500)) &&
			txn.Date.Format("2006-01-02") == "2024-03-10"
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.Equal(userID, created.UserID)
	suite.Equal(domain.Expense, created.Category)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:     "10/03/2024",
		Type:     domain.Debit,
		Amount:   decimal.NewFromInt(10),
		Account:  "Rent",
		Category: domain.Expense,
	}

	created, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:     "2024-03-10",
		Type:     domain.Credit,
		Amount:   decimal.NewFromInt(-5),
		Account:  "Sales",
		Category: domain.Revenue,
	}

	created, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_WrongOwner() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, UserID: uuid.NewString()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, uuid.NewString(), txnID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsLimit() {
	ctx := context.Background()
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(20), Date: time.Now()},
	}

	// A zero limit falls back to 20.
	suite.mockTxnRepo.On("ListTransactionsByUser", ctx, userID, 20, (*string)(nil)).Return(txns, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, userID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Transactions, 1)
	suite.Nil(resp.NextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PartialFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:          domain.Debit,
		Amount:        decimal.NewFromInt(500),
		Account:       "Rent",
		Category:      domain.Expense,
	}
	newAmount := decimal.NewFromInt(650)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		// Only the amount changes, everything else is preserved.
		return txn.Amount.Equal(newAmount) && txn.Account == "Rent" && txn.Type == domain.Debit
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, userID, txnID, dto.UpdateTransactionRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, UserID: userID}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, userID, txnID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, uuid.NewString(), txnID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
