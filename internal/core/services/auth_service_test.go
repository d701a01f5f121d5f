package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/apperrors"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/utils"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg          *config.Config
	mockUserRepo *MockUserRepository
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-for-token-service",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "ophelia-test",
		RefreshTokenExpiryDuration: time.Hour * 168,
	}
	suite.mockUserRepo = new(MockUserRepository)
	userSvc := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewTokenService(suite.cfg, userSvc)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_IsOpaque() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token1, expiresAt, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)
	token2, _, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)

	suite.Len(token1, 64) // 32 random bytes, hex encoded
	suite.NotEqual(token1, token2)
	suite.True(expiresAt.After(time.Now().Add(time.Hour*167)))
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "valid-refresh-token"
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 userID,
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, rawToken)

	suite.Require().NoError(err)
	suite.Equal(userID, user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "expired-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:                 userID,
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, rawToken)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Mismatch() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 userID,
		RefreshTokenHash:       utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "some-other-token")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoneStored() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
