package accounts

import (
	"context"
	"time"
)

// TokenPair is an access/refresh token pair issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Registration carries the fields accepted when creating an account.
type Registration struct {
	Email             string `validate:"required,email"`
	Password          string `validate:"required,min=8,max=128"`
	FirstName         string `validate:"omitempty,max=150"`
	LastName          string `validate:"omitempty,max=150"`
	PhoneNumber       string `validate:"omitempty,e164"`
	PreferredLanguage string `validate:"omitempty,oneof=ka en ru"`
}

// ProfileUpdate carries the mutable account fields. Nil pointers leave
// the current value untouched.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	PhoneNumber       *string
	PreferredLanguage *string
}

// AccountService defines registration, authentication and profile
// operations.
type AccountService interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, registration *Registration) (*User, error)

	// Login verifies credentials and issues a token pair. Failed
	// attempts count toward the lockout policy; a locked account is
	// rejected before the password is checked.
	Login(ctx context.Context, email, password, remoteIP string) (*User, *TokenPair, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, userID string) (*User, error)

	// Update applies the non-nil fields of the update to the user.
	Update(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)

	// ChangePassword verifies the current password and replaces it.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// TokenIssuer signs and verifies authentication tokens.
type TokenIssuer interface {
	// IssuePair signs an access/refresh pair for the user.
	IssuePair(userID, email string) (*TokenPair, error)

	// VerifyAccess validates an access token and returns the user id.
	VerifyAccess(token string) (string, error)

	// VerifyRefresh validates a refresh token and returns the user id.
	VerifyRefresh(token string) (string, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
}

// UserProfileRepository defines the interface for UserProfile-related operations
type UserProfileRepository interface {
	Create(ctx context.Context, profile *UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	UpdateByID(ctx context.Context, profile *UserProfile) error
}
