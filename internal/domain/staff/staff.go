package staff

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Role name constants
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleWaiter  = "waiter"
	RoleKitchen = "kitchen"
	RoleCashier = "cashier"
)

// Permissions maps a resource (e.g. "orders") to the actions allowed
// on it (e.g. ["view", "update"]).
type Permissions map[string][]string

// Allows reports whether the permission set grants an action on a
// resource. The wildcard "*" grants everything.
func (p Permissions) Allows(resource, action string) bool {
	if actions, ok := p["*"]; ok {
		for _, a := range actions {
			if a == "*" || a == action {
				return true
			}
		}
	}
	actions, ok := p[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == "*" || a == action {
			return true
		}
	}
	return false
}

// StaffRole is a named permission set within one restaurant.
type StaffRole struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	Name         string `validate:"required,oneof=owner manager waiter kitchen cashier"`
	Permissions  Permissions
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating StaffRole struct
func (r *StaffRole) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// DefaultPermissions returns the permission set granted to a role by
// default. Owners hold the wildcard.
func DefaultPermissions(roleName string) Permissions {
	switch roleName {
	case RoleOwner:
		return Permissions{"*": {"*"}}
	case RoleManager:
		return Permissions{
			"menu":         {"view", "create", "update", "delete"},
			"tables":       {"view", "create", "update", "delete"},
			"orders":       {"view", "create", "update", "cancel"},
			"reservations": {"view", "create", "update", "cancel"},
			"payments":     {"view", "create", "refund"},
			"staff":        {"view", "create", "update"},
			"audit":        {"view"},
		}
	case RoleWaiter:
		return Permissions{
			"menu":         {"view"},
			"tables":       {"view", "update"},
			"orders":       {"view", "create", "update"},
			"reservations": {"view", "update"},
		}
	case RoleKitchen:
		return Permissions{
			"menu":   {"view"},
			"orders": {"view", "update"},
		}
	case RoleCashier:
		return Permissions{
			"orders":   {"view"},
			"payments": {"view", "create"},
		}
	default:
		return Permissions{}
	}
}

// StaffMember links a user to a restaurant with a role.
type StaffMember struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	UserID       string `validate:"required,uuid4"`
	RoleID       string `validate:"required,uuid4"`
	IsActive     bool
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating StaffMember struct
func (m *StaffMember) Validate() error {
	validate := validator.New()
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
