//go:build unit
// +build unit

package staff

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPermissions_Allows(t *testing.T) {
	permissions := Permissions{
		"orders":   {"view", "update"},
		"payments": {"*"},
	}

	assert.True(t, permissions.Allows("orders", "view"))
	assert.True(t, permissions.Allows("orders", "update"))
	assert.False(t, permissions.Allows("orders", "delete"))
	assert.True(t, permissions.Allows("payments", "refund"))
	assert.False(t, permissions.Allows("menu", "view"))
}

func TestPermissions_Allows_Wildcard(t *testing.T) {
	owner := Permissions{"*": {"*"}}

	assert.True(t, owner.Allows("orders", "cancel"))
	assert.True(t, owner.Allows("restaurant", "delete"))
	assert.True(t, owner.Allows("anything", "anything"))
}

func TestPermissions_Allows_Empty(t *testing.T) {
	var none Permissions

	assert.False(t, none.Allows("orders", "view"))
}

func TestDefaultPermissions(t *testing.T) {
	assert.True(t, DefaultPermissions(RoleOwner).Allows("staff", "delete"))

	manager := DefaultPermissions(RoleManager)
	assert.True(t, manager.Allows("payments", "refund"))
	assert.True(t, manager.Allows("audit", "view"))
	assert.False(t, manager.Allows("restaurant", "update"))

	waiter := DefaultPermissions(RoleWaiter)
	assert.True(t, waiter.Allows("orders", "create"))
	assert.False(t, waiter.Allows("orders", "cancel"))
	assert.False(t, waiter.Allows("payments", "view"))

	kitchen := DefaultPermissions(RoleKitchen)
	assert.True(t, kitchen.Allows("orders", "update"))
	assert.False(t, kitchen.Allows("tables", "view"))

	cashier := DefaultPermissions(RoleCashier)
	assert.True(t, cashier.Allows("payments", "create"))
	assert.False(t, cashier.Allows("payments", "refund"))

	assert.False(t, DefaultPermissions("sommelier").Allows("menu", "view"))
}

func TestStaffRole_Validate(t *testing.T) {
	role := StaffRole{
		ID:           uuid.NewString(),
		RestaurantID: uuid.NewString(),
		Name:         RoleManager,
		Permissions:  DefaultPermissions(RoleManager),
		CreatedAt:    time.Now().UTC(),
	}
	assert.Nil(t, role.Validate())

	role.Name = "sommelier"
	err := role.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: oneof")
}

func TestStaffMember_Validate(t *testing.T) {
	member := StaffMember{
		ID:           uuid.NewString(),
		RestaurantID: uuid.NewString(),
		UserID:       uuid.NewString(),
		RoleID:       uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
	}
	assert.Nil(t, member.Validate())

	member.UserID = ""
	err := member.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: UserID, Tag: required")
}
