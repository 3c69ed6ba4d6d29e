package app

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// restaurantService implements the RestaurantService interface for tenant lifecycle
type restaurantService struct {
	restaurantRepo tenants.RestaurantRepository
	staffService   staff.StaffService
	logger         logger.Logger
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(
	restaurantRepo tenants.RestaurantRepository,
	staffService staff.StaffService,
	logger logger.Logger,
) (tenants.RestaurantService, error) {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		staffService:   staffService,
		logger:         logger,
	}, nil
}

// Register creates the restaurant, seeds its built-in roles, and puts
// the owner on the roster so permission checks work from day one.
func (s *restaurantService) Register(ctx context.Context, ownerID, name, slug string) (*tenants.Restaurant, error) {
	if existing, err := s.restaurantRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, fmt.Errorf("slug %s is already taken", slug)
	}

	restaurant := &tenants.Restaurant{
		ID:            uuid.NewString(),
		Name:          name,
		Slug:          slug,
		OwnerID:       ownerID,
		IsActive:      true,
		TaxRate:       decimal.Zero,
		ServiceCharge: decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("failed to register restaurant: %w", err)
	}

	if err := s.staffService.EnsureDefaultRoles(ctx, restaurant.ID); err != nil {
		return nil, fmt.Errorf("failed to seed default roles: %w", err)
	}
	if _, err := s.staffService.AddMember(ctx, restaurant.ID, ownerID, staff.RoleOwner); err != nil {
		return nil, fmt.Errorf("failed to add owner to staff roster: %w", err)
	}

	s.logger.Info("Registered restaurant ", slug, " owned by ", ownerID)
	return restaurant, nil
}

func (s *restaurantService) GetBySlug(ctx context.Context, slug string) (*tenants.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant with slug %s not found", slug)
	}
	return restaurant, nil
}

func (s *restaurantService) GetByID(ctx context.Context, restaurantID string) (*tenants.Restaurant, error) {
	return s.restaurantRepo.GetByID(ctx, restaurantID)
}

func (s *restaurantService) List(ctx context.Context, query *tenants.RestaurantQuery) ([]*tenants.Restaurant, error) {
	if query == nil {
		query = tenants.NewRestaurantQuery()
	}
	return s.restaurantRepo.List(ctx, query)
}

func (s *restaurantService) Update(ctx context.Context, restaurantID string, update *tenants.RestaurantUpdate) (*tenants.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		restaurant.Name = *update.Name
	}
	if update.TaxRate != nil {
		restaurant.TaxRate = *update.TaxRate
	}
	if update.ServiceCharge != nil {
		restaurant.ServiceCharge = *update.ServiceCharge
	}
	restaurant.UpdatedAt = time.Now().UTC()

	if err := s.restaurantRepo.UpdateByID(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *restaurantService) Deactivate(ctx context.Context, restaurantID string) error {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}

	restaurant.IsActive = false
	restaurant.UpdatedAt = time.Now().UTC()

	if err := s.restaurantRepo.UpdateByID(ctx, restaurant); err != nil {
		return fmt.Errorf("failed to deactivate restaurant: %w", err)
	}

	s.logger.Info("Deactivated restaurant ", restaurantID)
	return nil
}
