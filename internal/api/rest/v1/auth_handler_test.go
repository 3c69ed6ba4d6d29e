//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/app"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	user := &accounts.User{ID: "user-123", Email: "guest@example.com", CreatedAt: time.Now().UTC()}
	mockAccountService.On("Register", mock.Anything, mock.Anything).Return(user, nil)

	body := bytes.NewBufferString(`{"email":"guest@example.com","password":"s3cret-pass"}`)
	req, _ := http.NewRequest("POST", "/auth/register", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_Register_InvalidBody_Error(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBufferString(`{"email":"guest@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	user := &accounts.User{ID: "user-123", Email: "guest@example.com"}
	pair := &accounts.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresAt: time.Now().UTC().Add(time.Hour)}
	mockAccountService.On("Login", mock.Anything, "guest@example.com", "s3cret-pass", mock.Anything).Return(user, pair, nil)

	body := bytes.NewBufferString(`{"email":"guest@example.com","password":"s3cret-pass"}`)
	req, _ := http.NewRequest("POST", "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access-token")
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials_Error(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	mockAccountService.On("Login", mock.Anything, "guest@example.com", "wrong-pass", mock.Anything).
		Return(nil, nil, app.ErrInvalidCredentials)

	body := bytes.NewBufferString(`{"email":"guest@example.com","password":"wrong-pass"}`)
	req, _ := http.NewRequest("POST", "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_Login_LockedAccount_Error(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	mockAccountService.On("Login", mock.Anything, "guest@example.com", "s3cret-pass", mock.Anything).
		Return(nil, nil, errors.New("account locked, try again later"))

	body := bytes.NewBufferString(`{"email":"guest@example.com","password":"s3cret-pass"}`)
	req, _ := http.NewRequest("POST", "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Login(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "account locked")
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_Refresh_InvalidToken_Error(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	mockAccountService.On("Refresh", mock.Anything, "stale-token").Return(nil, errors.New("token expired"))

	body := bytes.NewBufferString(`{"refresh_token":"stale-token"}`)
	req, _ := http.NewRequest("POST", "/auth/refresh", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid refresh token")
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	user := &accounts.User{ID: "user-123", Email: "guest@example.com"}
	mockAccountService.On("GetByID", mock.Anything, "user-123").Return(user, nil)

	req, _ := http.NewRequest("GET", "/auth/me", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(ctxUserIDKey, "user-123")

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guest@example.com")
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	mockAccountService.On("ChangePassword", mock.Anything, "user-123", "old-pass", "new-pass-123").Return(nil)

	body := bytes.NewBufferString(`{"current_password":"old-pass","new_password":"new-pass-123"}`)
	req, _ := http.NewRequest("POST", "/auth/change-password", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(ctxUserIDKey, "user-123")

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "password changed")
	mockAccountService.AssertExpectations(t)
}
