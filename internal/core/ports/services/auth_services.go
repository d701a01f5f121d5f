package services

import (
	"context"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues and validates authentication tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed JWT for the user along with
	// its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken returns an opaque refresh token and its
	// expiry; only the hash is stored server-side.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken verifies the presented refresh token
	// against the user's stored hash and expiry, returning the user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google OAuth2 login flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString returns a random state value for CSRF
	// protection of the OAuth redirect.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL builds the consent-screen URL for the given state.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken trades the authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the authenticated user's Google profile.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token and extracts the profile.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
}
