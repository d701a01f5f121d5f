package handlers_test

import (
	"bytes"
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
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/utils"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	cfg              *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:              "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:      time.Hour,
		JWTIssuer:              "ophelia-test",
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/api/v1/auth",
	}

	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)
	h := handlers.NewAuthHandler(suite.mockUserService, suite.mockTokenService, suite.cfg)

	auth := suite.router.Group("/api/v1/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body any, prepare func(*http.Request)) *httptest.ResponseRecorder {
	b, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if prepare != nil {
		prepare(req)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) testUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := suite.testUser("correct-horse")
	accessExpiry := time.Now().Add(time.Hour)
	refreshExpiry := time.Now().Add(720 * time.Hour)

	suite.mockUserService.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	suite.mockUserService.On("GetUserByID", mock.Anything, user.UserID).Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("access-token", accessExpiry, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).Return("refresh-token", refreshExpiry, nil).Once()
	suite.mockUserService.On("StoreRefreshTokenHash", mock.Anything, user.UserID, utils.HashRefreshToken("refresh-token"), mock.AnythingOfType("*time.Time")).Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: user.Email, Password: "correct-horse"}, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access-token", resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)

	// Refresh token travels only in the HTTP-only cookie.
	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == suite.cfg.RefreshTokenCookieName {
			found = true
			suite.Equal("refresh-token", cookie.Value)
			suite.True(cookie.HttpOnly)
			suite.Equal(suite.cfg.RefreshTokenCookiePath, cookie.Path)
		}
	}
	suite.True(found, "refresh cookie should be set")
	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	user := suite.testUser("correct-horse")
	suite.mockUserService.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: user.Email, Password: "battery-staple"}, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func (suite *AuthHandlerTestSuite) TestLogin_GoogleOnlyAccount() {
	user := suite.testUser("unused")
	user.PasswordHash = ""
	user.AuthProvider = domain.ProviderGoogle
	suite.mockUserService.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: user.Email, Password: "anything"}, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"}
	created := &domain.User{UserID: uuid.NewString(), Name: req.Name, Email: req.Email}

	suite.mockUserService.On("CreateUser", mock.Anything, req).Return(created, nil).Once()

	w := suite.postJSON("/api/v1/auth/register", req, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.UserID, resp.UserID)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.postJSON("/api/v1/auth/register", dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser")
}

func (suite *AuthHandlerTestSuite) TestRefresh_RotatesTokens() {
	user := suite.testUser("correct-horse")
	expiredAccessToken, err := utils.GenerateJWT(user.UserID, suite.cfg.JWTSecret, -time.Minute, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	accessExpiry := time.Now().Add(time.Hour)
	refreshExpiry := time.Now().Add(720 * time.Hour)

	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, user.UserID, "old-refresh").Return(user, nil).Once()
	suite.mockUserService.On("GetUserByID", mock.Anything, user.UserID).Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("new-access", accessExpiry, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).Return("new-refresh", refreshExpiry, nil).Once()
	suite.mockUserService.On("StoreRefreshTokenHash", mock.Anything, user.UserID, utils.HashRefreshToken("new-refresh"), mock.AnythingOfType("*time.Time")).Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/refresh", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+expiredAccessToken)
		req.AddCookie(&http.Cookie{Name: suite.cfg.RefreshTokenCookieName, Value: "old-refresh"})
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RefreshTokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new-access", resp.Token)
	suite.mockTokenService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefresh_MissingCookie() {
	user := suite.testUser("correct-horse")
	accessToken, err := utils.GenerateJWT(user.UserID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	w := suite.postJSON("/api/v1/auth/refresh", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "ValidateAndParseRefreshToken")
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsStoredToken() {
	user := suite.testUser("correct-horse")
	accessToken, err := utils.GenerateJWT(user.UserID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	suite.mockUserService.On("StoreRefreshTokenHash", mock.Anything, user.UserID, "", (*time.Time)(nil)).Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/logout", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
