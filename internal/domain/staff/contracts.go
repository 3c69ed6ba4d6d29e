package staff

import "context"

// StaffService manages the staff roster of a restaurant.
type StaffService interface {
	// EnsureDefaultRoles creates the built-in roles for a restaurant
	// when missing. Idempotent.
	EnsureDefaultRoles(ctx context.Context, restaurantID string) error

	// AddMember assigns a user to a role at the restaurant.
	AddMember(ctx context.Context, restaurantID, userID, roleName string) (*StaffMember, error)

	// RemoveMember deactivates a staff member.
	RemoveMember(ctx context.Context, restaurantID, memberID string) error

	// ListMembers lists active staff members of the restaurant.
	ListMembers(ctx context.Context, restaurantID string) ([]*StaffMember, error)

	// HasPermission reports whether the user may perform the action on
	// the resource at the restaurant. Restaurant owners always pass.
	HasPermission(ctx context.Context, restaurantID, userID, resource, action string) (bool, error)
}

// StaffRoleRepository defines the interface for StaffRole-related operations
type StaffRoleRepository interface {
	Create(ctx context.Context, role *StaffRole) error
	GetByID(ctx context.Context, roleID string) (*StaffRole, error)
	GetByName(ctx context.Context, restaurantID, name string) (*StaffRole, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*StaffRole, error)
}

// StaffMemberRepository defines the interface for StaffMember-related operations
type StaffMemberRepository interface {
	Create(ctx context.Context, member *StaffMember) error
	GetByID(ctx context.Context, memberID string) (*StaffMember, error)
	GetByUser(ctx context.Context, restaurantID, userID string) (*StaffMember, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*StaffMember, error)
	UpdateByID(ctx context.Context, member *StaffMember) error
}
