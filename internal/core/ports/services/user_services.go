package services

import (
	"context"
	"time"

	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
)

// UserSvcFacade exposes user account operations.
type UserSvcFacade interface {
	// CreateUser registers a new local user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindOrCreateGoogleUser returns the user matching the Google subject,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateUser applies partial updates to a user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// StoreRefreshTokenHash persists the hash and expiry of a user's
	// refresh token; an empty hash with nil expiry clears it.
	StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string, expiresAt *time.Time) error

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string) error
}
