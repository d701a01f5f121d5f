package models

import (
	"database/sql"
	"time"
)

// User is the persistence shape of a user. Nullable columns use sql.Null
// types; the domain layer works with plain values and pointers instead.
type User struct {
	UserID       string         `json:"userID" db:"user_id"`
	Name         string         `json:"name" db:"name"`
	Email        string         `json:"email" db:"email"`
	PasswordHash sql.NullString `json:"-" db:"password_hash"`
	AuthProvider string         `json:"authProvider" db:"auth_provider"`
	ProviderID   sql.NullString `json:"-" db:"provider_id"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
