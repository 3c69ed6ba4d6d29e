package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/giorgigordiashvili/restaurant-platform/internal/app"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling account operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Me(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

type authHandler struct {
	accountService accounts.AccountService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService) AuthHandler {
	return &authHandler{accountService: accountService}
}

// Register creates a new account
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	user, err := handler.accountService.Register(ctx, &accounts.Registration{
		Email:             request.Email,
		Password:          request.Password,
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		PhoneNumber:       request.PhoneNumber,
		PreferredLanguage: request.PreferredLanguage,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("registration failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

// Login verifies credentials and issues tokens
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	user, pair, err := handler.accountService.Login(ctx, request.Email, request.Password, ctx.ClientIP())
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, app.ErrInvalidCredentials) {
			status = http.StatusForbidden
		}
		ctx.JSON(status, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{
		User:   toUserResponse(user),
		Tokens: toTokenResponse(pair),
	})
}

// Refresh exchanges a refresh token for a new pair
func (handler *authHandler) Refresh(ctx *gin.Context) {
	var request RefreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	pair, err := handler.accountService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid refresh token"})
		return
	}

	ctx.JSON(http.StatusOK, toTokenResponse(pair))
}

// Me returns the authenticated account
func (handler *authHandler) Me(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	user, err := handler.accountService.GetByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "user not found"})
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe applies a partial profile update
func (handler *authHandler) UpdateMe(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	var request UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	user, err := handler.accountService.Update(ctx, userID, &accounts.ProfileUpdate{
		FirstName:         request.FirstName,
		LastName:          request.LastName,
		PhoneNumber:       request.PhoneNumber,
		PreferredLanguage: request.PreferredLanguage,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("update failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// ChangePassword verifies the current password and replaces it
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	var request ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := handler.accountService.ChangePassword(ctx, userID, request.CurrentPassword, request.NewPassword); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "password changed"})
}
