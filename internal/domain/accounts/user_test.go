//go:build unit
// +build unit

package accounts

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validUser() *User {
	return &User{
		ID:                uuid.NewString(),
		Email:             "nino@example.com",
		PasswordHash:      "$2a$10$abcdefghijklmnopqrstuv",
		PreferredLanguage: LanguageEnglish,
		CreatedAt:         time.Now().UTC(),
	}
}

func TestUser_FullName(t *testing.T) {
	user := &User{Email: "nino@example.com"}
	assert.Equal(t, "nino@example.com", user.FullName())

	user.FirstName = "Nino"
	assert.Equal(t, "Nino", user.FullName())

	user.LastName = "Beridze"
	assert.Equal(t, "Nino Beridze", user.FullName())

	user.FirstName = ""
	assert.Equal(t, "Beridze", user.FullName())
}

func TestUser_Lockout(t *testing.T) {
	now := time.Now().UTC()
	user := &User{}

	for i := 0; i < MaxFailedLogins-1; i++ {
		user.RegisterFailedLogin(now)
		assert.False(t, user.IsLocked(now), "attempt %d should not lock the account", i+1)
	}

	user.RegisterFailedLogin(now)
	assert.True(t, user.IsLocked(now))
	assert.False(t, user.IsLocked(now.Add(LockoutDuration+time.Minute)))

	user.ResetFailedLogins()
	assert.Equal(t, 0, user.FailedLoginAttempts)
	assert.False(t, user.IsLocked(now))
}

func TestUser_Validate(t *testing.T) {
	user := validUser()
	assert.Nil(t, user.Validate())

	user.Email = "not-an-email"
	err := user.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: Email, Tag: email")
}

func TestUser_Validate_Language(t *testing.T) {
	user := validUser()
	user.PreferredLanguage = "fr"

	err := user.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: PreferredLanguage, Tag: oneof")
}

func TestUser_Validate_PhoneNumber(t *testing.T) {
	user := validUser()
	user.PhoneNumber = "+995599123456"
	assert.Nil(t, user.Validate())

	user.PhoneNumber = "599-12-34-56"
	err := user.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: PhoneNumber, Tag: e164")
}
