package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/handlers"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Journal(ctx context.Context, userID string, from, to time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockReportingService) Ledger(ctx context.Context, userID string, from, to time.Time) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}
func (m *MockReportingService) TrialBalance(ctx context.Context, userID string, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}
func (m *MockReportingService) ProfitAndLoss(ctx context.Context, userID string, from, to time.Time) (domain.ProfitAndLoss, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(domain.ProfitAndLoss), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportingService
	jwtSecret   string
}

func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ophelia-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockReportingService)
	h := handlers.NewReportingHandler(suite.mockService)

	reports := suite.router.Group("/api/v1/reports")
	{
		reports.GET("/journal", h.GetJournal)
		reports.GET("/ledger", h.GetLedger)
		reports.GET("/trial-balance", h.GetTrialBalance)
		reports.GET("/profit-loss", h.GetProfitLoss)
	}
}

func (suite *ReportingHandlerTestSuite) doRequest(url, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestGetJournal_Success() {
	userID := uuid.NewString()
	entries := []domain.JournalEntry{
		{
			TransactionID: uuid.NewString(),
			Date:          time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Description:   "Office rent",
			Amount:        decimal.NewFromInt(300),
			DebitAccount:  "Rent",
			CreditAccount: "Cash/Bank",
		},
	}

	suite.mockService.On("Journal", mock.Anything, userID, time.Time{}, time.Time{}).
		Return(entries, nil).Once()

	w := suite.doRequest("/api/v1/reports/journal", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("Rent", resp.Entries[0].DebitAccount)
	suite.Equal("Cash/Bank", resp.Entries[0].CreditAccount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetLedger_PeriodParams() {
	userID := uuid.NewString()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	accounts := []domain.LedgerAccount{
		{Name: "Sales", Category: domain.Revenue, CreditsTotal: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000)},
	}

	suite.mockService.On("Ledger", mock.Anything, userID, from, to).Return(accounts, nil).Once()

	w := suite.doRequest("/api/v1/reports/ledger?fromDate=2024-03-01&toDate=2024-03-31", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-03-01", resp.FromDate)
	suite.Equal("2024-03-31", resp.ToDate)
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("Sales", resp.Accounts[0].Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetLedger_InvalidDate() {
	userID := uuid.NewString()

	w := suite.doRequest("/api/v1/reports/ledger?fromDate=03-01-2024", userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Ledger")
}

func (suite *ReportingHandlerTestSuite) TestGetLedger_InvertedPeriod() {
	userID := uuid.NewString()

	w := suite.doRequest("/api/v1/reports/ledger?fromDate=2024-03-31&toDate=2024-03-01", userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Ledger")
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_Totals() {
	userID := uuid.NewString()
	rows := []domain.TrialBalanceRow{
		{Account: "Cash/Bank", Category: domain.Asset, Debit: decimal.NewFromInt(700), Credit: decimal.Zero},
		{Account: "Rent", Category: domain.Expense, Debit: decimal.NewFromInt(300), Credit: decimal.Zero},
		{Account: "Sales", Category: domain.Revenue, Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
	}

	suite.mockService.On("TrialBalance", mock.Anything, userID, time.Time{}, time.Time{}).
		Return(rows, nil).Once()

	w := suite.doRequest("/api/v1/reports/trial-balance", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 3)
	suite.True(resp.Totals.Debit.Equal(decimal.NewFromInt(1000)))
	suite.True(resp.Totals.Credit.Equal(decimal.NewFromInt(1000)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetProfitLoss_Summary() {
	userID := uuid.NewString()
	report := domain.ProfitAndLoss{
		Items: []domain.ProfitLossItem{
			{Account: "Sales", Category: domain.Revenue, Amount: decimal.NewFromInt(1000)},
			{Account: "Rent", Category: domain.Expense, Amount: decimal.NewFromInt(300)},
		},
		NetIncome: decimal.NewFromInt(700),
	}

	suite.mockService.On("ProfitAndLoss", mock.Anything, userID, time.Time{}, time.Time{}).
		Return(report, nil).Once()

	w := suite.doRequest("/api/v1/reports/profit-loss", userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProfitLossResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Summary.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(resp.Summary.TotalExpenses.Equal(decimal.NewFromInt(300)))
	suite.True(resp.Summary.NetIncome.Equal(decimal.NewFromInt(700)))
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
