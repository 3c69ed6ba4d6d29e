package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormStaffRoleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStaffRoleRepository creates a new GORM-based StaffRoleRepository implementation
func NewGormStaffRoleRepository(db *gorm.DB, logger logger.Logger) (staff.StaffRoleRepository, error) {
	return &gormStaffRoleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStaffRoleRepository) Create(ctx context.Context, role *staff.StaffRole) error {
	if err := role.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StaffRoleModel{}
	model.FromDomain(role)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create staff role: %w", err)
	}

	r.logger.Info("Created staff role ", role.Name, " for restaurant ", role.RestaurantID)
	return nil
}

func (r *gormStaffRoleRepository) GetByID(ctx context.Context, roleID string) (*staff.StaffRole, error) {
	var model models.StaffRoleModel
	if err := r.db.WithContext(ctx).Where("id = ?", roleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff role with ID %s not found", roleID)
		}
		return nil, fmt.Errorf("failed to fetch staff role: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStaffRoleRepository) GetByName(ctx context.Context, restaurantID, name string) (*staff.StaffRole, error) {
	var model models.StaffRoleModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND name = ?", restaurantID, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff role %s not found", name)
		}
		return nil, fmt.Errorf("failed to fetch staff role: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStaffRoleRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*staff.StaffRole, error) {
	var modelList []*models.StaffRoleModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch staff roles: %w", err)
	}

	domainList := make([]*staff.StaffRole, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormStaffMemberRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStaffMemberRepository creates a new GORM-based StaffMemberRepository implementation
func NewGormStaffMemberRepository(db *gorm.DB, logger logger.Logger) (staff.StaffMemberRepository, error) {
	return &gormStaffMemberRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStaffMemberRepository) Create(ctx context.Context, member *staff.StaffMember) error {
	if err := member.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StaffMemberModel{}
	model.FromDomain(member)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}

	r.logger.Info("Added staff member ", member.UserID, " to restaurant ", member.RestaurantID)
	return nil
}

func (r *gormStaffMemberRepository) GetByID(ctx context.Context, memberID string) (*staff.StaffMember, error) {
	var model models.StaffMemberModel
	if err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff member with ID %s not found", memberID)
		}
		return nil, fmt.Errorf("failed to fetch staff member: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStaffMemberRepository) GetByUser(ctx context.Context, restaurantID, userID string) (*staff.StaffMember, error) {
	var model models.StaffMemberModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s is not staff at restaurant %s", userID, restaurantID)
		}
		return nil, fmt.Errorf("failed to fetch staff member: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStaffMemberRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*staff.StaffMember, error) {
	var modelList []*models.StaffMemberModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}

	domainList := make([]*staff.StaffMember, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormStaffMemberRepository) UpdateByID(ctx context.Context, member *staff.StaffMember) error {
	if err := member.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StaffMemberModel{}
	model.FromDomain(member)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}

	return nil
}
