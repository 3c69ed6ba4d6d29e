package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any authentication failure that
// must not reveal whether the email exists.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// accountService implements the AccountService interface for
// registration, authentication and profiles
type accountService struct {
	userRepo     accounts.UserRepository
	profileRepo  accounts.UserProfileRepository
	tokenIssuer  accounts.TokenIssuer
	auditService audit.AuditService
	logger       logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	userRepo accounts.UserRepository,
	profileRepo accounts.UserProfileRepository,
	tokenIssuer accounts.TokenIssuer,
	auditService audit.AuditService,
	logger logger.Logger,
) (accounts.AccountService, error) {
	return &accountService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		tokenIssuer:  tokenIssuer,
		auditService: auditService,
		logger:       logger,
	}, nil
}

func (s *accountService) Register(ctx context.Context, registration *accounts.Registration) (*accounts.User, error) {
	if err := validator.New().Struct(registration); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(registration.Email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	language := registration.PreferredLanguage
	if language == "" {
		language = accounts.LanguageGeorgian
	}

	now := time.Now().UTC()
	user := &accounts.User{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      string(hash),
		FirstName:         registration.FirstName,
		LastName:          registration.LastName,
		PhoneNumber:       registration.PhoneNumber,
		PreferredLanguage: language,
		CreatedAt:         now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &accounts.UserProfile{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		EmailNotifications: true,
		PushNotifications:  true,
		CreatedAt:          now,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	s.auditService.Record(ctx, &audit.Entry{
		ID:        uuid.NewString(),
		UserID:    &user.ID,
		UserEmail: user.Email,
		Action:    audit.ActionUserCreate,
		CreatedAt: now,
	})

	return user, nil
}

func (s *accountService) Login(ctx context.Context, email, password, remoteIP string) (*accounts.User, *accounts.TokenPair, error) {
	now := time.Now().UTC()

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if user.IsLocked(now) {
		return nil, nil, fmt.Errorf("account is temporarily locked, try again later")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		user.RegisterFailedLogin(now)
		user.UpdatedAt = now
		if updateErr := s.userRepo.UpdateByID(ctx, user); updateErr != nil {
			s.logger.Error("Failed to record failed login for ", user.ID, ": ", updateErr)
		}

		s.auditService.Record(ctx, &audit.Entry{
			ID:        uuid.NewString(),
			UserID:    &user.ID,
			UserEmail: user.Email,
			IPAddress: remoteIP,
			Action:    audit.ActionLoginFailed,
			CreatedAt: now,
		})
		return nil, nil, ErrInvalidCredentials
	}

	user.ResetFailedLogins()
	user.LastLoginIP = remoteIP
	user.UpdatedAt = now
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to update login state: %w", err)
	}

	pair, err := s.tokenIssuer.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.auditService.Record(ctx, &audit.Entry{
		ID:        uuid.NewString(),
		UserID:    &user.ID,
		UserEmail: user.Email,
		IPAddress: remoteIP,
		Action:    audit.ActionLogin,
		CreatedAt: now,
	})

	return user, pair, nil
}

func (s *accountService) Refresh(ctx context.Context, refreshToken string) (*accounts.TokenPair, error) {
	userID, err := s.tokenIssuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.tokenIssuer.IssuePair(user.ID, user.Email)
}

func (s *accountService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *accountService) Update(ctx context.Context, userID string, update *accounts.ProfileUpdate) (*accounts.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
		user.PhoneVerified = false
	}
	if update.PreferredLanguage != nil {
		user.PreferredLanguage = *update.PreferredLanguage
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *accountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user.PasswordHash = string(hash)
	user.UpdatedAt = now

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.auditService.Record(ctx, &audit.Entry{
		ID:        uuid.NewString(),
		UserID:    &user.ID,
		UserEmail: user.Email,
		Action:    audit.ActionPasswordChange,
		CreatedAt: now,
	})

	return nil
}
