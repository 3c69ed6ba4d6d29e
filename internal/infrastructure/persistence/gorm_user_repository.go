package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (accounts.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s not found", userID)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	var model models.UserModel
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s not found", normalized)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

type gormUserProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserProfileRepository creates a new GORM-based UserProfileRepository implementation
func NewGormUserProfileRepository(db *gorm.DB, logger logger.Logger) (accounts.UserProfileRepository, error) {
	return &gormUserProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserProfileRepository) Create(ctx context.Context, profile *accounts.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user profile: %w", err)
	}

	r.logger.Info("Created profile for user ", profile.UserID)
	return nil
}

func (r *gormUserProfileRepository) GetByUserID(ctx context.Context, userID string) (*accounts.UserProfile, error) {
	var model models.UserProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserProfileRepository) UpdateByID(ctx context.Context, profile *accounts.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserProfileModel{}
	model.FromDomain(profile)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	return nil
}
