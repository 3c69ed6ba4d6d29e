package app

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
)

// staffService implements the StaffService interface for roster management
type staffService struct {
	roleRepo       staff.StaffRoleRepository
	memberRepo     staff.StaffMemberRepository
	restaurantRepo tenants.RestaurantRepository
	logger         logger.Logger
}

// NewStaffService creates a new instance of StaffService
func NewStaffService(
	roleRepo staff.StaffRoleRepository,
	memberRepo staff.StaffMemberRepository,
	restaurantRepo tenants.RestaurantRepository,
	logger logger.Logger,
) (staff.StaffService, error) {
	return &staffService{
		roleRepo:       roleRepo,
		memberRepo:     memberRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}, nil
}

func (s *staffService) EnsureDefaultRoles(ctx context.Context, restaurantID string) error {
	roleNames := []string{staff.RoleOwner, staff.RoleManager, staff.RoleWaiter, staff.RoleKitchen, staff.RoleCashier}

	for _, name := range roleNames {
		if _, err := s.roleRepo.GetByName(ctx, restaurantID, name); err == nil {
			continue
		}

		role := &staff.StaffRole{
			ID:           uuid.NewString(),
			RestaurantID: restaurantID,
			Name:         name,
			Permissions:  staff.DefaultPermissions(name),
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.roleRepo.Create(ctx, role); err != nil {
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}
	}

	return nil
}

func (s *staffService) AddMember(ctx context.Context, restaurantID, userID, roleName string) (*staff.StaffMember, error) {
	role, err := s.roleRepo.GetByName(ctx, restaurantID, roleName)
	if err != nil {
		return nil, fmt.Errorf("role %s does not exist at this restaurant: %w", roleName, err)
	}

	// Re-adding an existing member reactivates them under the new role.
	if existing, err := s.memberRepo.GetByUser(ctx, restaurantID, userID); err == nil {
		existing.RoleID = role.ID
		existing.IsActive = true
		existing.UpdatedAt = time.Now().UTC()
		if err := s.memberRepo.UpdateByID(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate staff member: %w", err)
		}
		return existing, nil
	}

	member := &staff.StaffMember{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		UserID:       userID,
		RoleID:       role.ID,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add staff member: %w", err)
	}

	return member, nil
}

func (s *staffService) RemoveMember(ctx context.Context, restaurantID, memberID string) error {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member.RestaurantID != restaurantID {
		return fmt.Errorf("staff member with ID %s not found", memberID)
	}

	member.IsActive = false
	member.UpdatedAt = time.Now().UTC()

	if err := s.memberRepo.UpdateByID(ctx, member); err != nil {
		return fmt.Errorf("failed to remove staff member: %w", err)
	}

	s.logger.Info("Removed staff member ", memberID, " from restaurant ", restaurantID)
	return nil
}

func (s *staffService) ListMembers(ctx context.Context, restaurantID string) ([]*staff.StaffMember, error) {
	members, err := s.memberRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	active := make([]*staff.StaffMember, 0, len(members))
	for _, member := range members {
		if member.IsActive {
			active = append(active, member)
		}
	}
	return active, nil
}

func (s *staffService) HasPermission(ctx context.Context, restaurantID, userID, resource, action string) (bool, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return false, err
	}
	if restaurant.OwnerID == userID {
		return true, nil
	}

	member, err := s.memberRepo.GetByUser(ctx, restaurantID, userID)
	if err != nil || !member.IsActive {
		return false, nil
	}

	role, err := s.roleRepo.GetByID(ctx, member.RoleID)
	if err != nil {
		return false, err
	}

	return role.Permissions.Allows(resource, action), nil
}
