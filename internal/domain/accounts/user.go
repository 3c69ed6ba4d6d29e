package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported interface languages.
const (
	LanguageGeorgian = "ka"
	LanguageEnglish  = "en"
	LanguageRussian  = "ru"
)

// Account lockout policy: five failed logins lock the account for
// thirty minutes.
const (
	MaxFailedLogins = 5
	LockoutDuration = 30 * time.Minute
)

// User is identified by email; username-style identifiers are not used.
type User struct {
	ID                  string `validate:"required,uuid4"`
	Email               string `validate:"required,email"`
	PasswordHash        string `validate:"required"`
	FirstName           string `validate:"omitempty,max=150"`
	LastName            string `validate:"omitempty,max=150"`
	PhoneNumber         string `validate:"omitempty,e164"`
	PhoneVerified       bool
	AvatarURL           string
	PreferredLanguage   string `validate:"required,oneof=ka en ru"`
	LastLoginIP         string
	FailedLoginAttempts int
	LockedUntil         *time.Time
	CreatedAt           time.Time `validate:"required"`
	UpdatedAt           time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// FullName returns the display name, falling back to email.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// IsLocked reports whether the account is currently locked out.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// RegisterFailedLogin increments the failure counter and applies the
// lockout once the threshold is reached.
func (u *User) RegisterFailedLogin(now time.Time) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= MaxFailedLogins {
		until := now.Add(LockoutDuration)
		u.LockedUntil = &until
	}
}

// ResetFailedLogins clears the failure counter after a successful login.
func (u *User) ResetFailedLogins() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
}

// UserProfile holds extended, low-churn account data.
type UserProfile struct {
	ID                 string `validate:"required,uuid4"`
	UserID             string `validate:"required,uuid4"`
	DateOfBirth        *time.Time
	Preferences        map[string]interface{}
	LoyaltyPoints      int
	TotalOrders        int
	EmailNotifications bool
	SMSNotifications   bool
	PushNotifications  bool
	CreatedAt          time.Time `validate:"required"`
	UpdatedAt          time.Time
}

// Validate for validating UserProfile struct
func (p *UserProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
