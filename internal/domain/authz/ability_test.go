package authz

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plaza/internal/domain/entity"
)

func TestDeriveAbilities_BaselineOnly(t *testing.T) {
	user := &entity.User{ID: uuid.New()}

	abilities := DeriveAbilities(user)

	assert.ElementsMatch(t, []string{"profile:read", "profile:update"}, abilities)
}

func TestDeriveAbilities_SuspendedCustomerKeepsCustomerSet(t *testing.T) {
	user := newCustomer(entity.CustomerLevelVIP, entity.ProfileStatusSuspended)

	abilities := DeriveAbilities(user)

	assert.Contains(t, abilities, "customer:profile:read")
	assert.Contains(t, abilities, "orders:create")
}

func TestDeriveAbilities_SuspendedBusinessProfileYieldsBaseline(t *testing.T) {
	user := newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusSuspended)

	abilities := DeriveAbilities(user)

	assert.ElementsMatch(t, []string{"profile:read", "profile:update"}, abilities)
}

func TestDeriveAbilities_Customer(t *testing.T) {
	user := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)

	abilities := DeriveAbilities(user)

	assert.ElementsMatch(t, []string{
		"profile:read", "profile:update",
		"customer:profile:read", "customer:profile:update",
		"orders:create", "orders:read",
	}, abilities)
}

func TestDeriveAbilities_BasicStaff(t *testing.T) {
	user := newStaff(entity.StaffLevelBasic, entity.ProfileStatusActive)

	abilities := DeriveAbilities(user)

	assert.ElementsMatch(t, []string{
		"profile:read", "profile:update",
		"staff:dashboard:read", "staff:reports:read",
	}, abilities)
}

func TestDeriveAbilities_AdvancedStaff(t *testing.T) {
	user := newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive)

	abilities := DeriveAbilities(user)

	assert.Contains(t, abilities, "staff:users:read")
	assert.Contains(t, abilities, "staff:reports:advanced")
	assert.NotContains(t, abilities, "admin:system:manage")
}

func TestDeriveAbilities_AdminStaffGetsFullAdminSet(t *testing.T) {
	user := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)

	abilities := DeriveAbilities(user)

	for _, want := range []string{
		"admin:users:read", "admin:users:create", "admin:users:update", "admin:users:delete",
		"admin:staff:create", "admin:staff:update", "admin:staff:delete",
		"admin:businesses:read", "admin:businesses:approve", "admin:system:manage",
	} {
		assert.Contains(t, abilities, want)
	}
	// admin implies the base staff set but not the advanced-only tokens
	assert.Contains(t, abilities, "staff:dashboard:read")
	assert.NotContains(t, abilities, "staff:reports:advanced")
}

func TestDeriveAbilities_StaffExplicitPermissionsMergedVerbatim(t *testing.T) {
	user := newStaff(entity.StaffLevelBasic, entity.ProfileStatusActive, "reports:export", "staff:reports:read")

	abilities := DeriveAbilities(user)

	assert.Contains(t, abilities, "reports:export")
	// duplicate with the implicit set must not appear twice
	count := 0
	for _, a := range abilities {
		if a == "staff:reports:read" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDeriveAbilities_BusinessUserPerMembershipTokens(t *testing.T) {
	businessID := uuid.New()
	user := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)

	abilities := DeriveAbilities(user)

	assert.Contains(t, abilities, fmt.Sprintf("business:%s:read", businessID))
	assert.Contains(t, abilities, fmt.Sprintf("business:%s:orders:read", businessID))
	assert.NotContains(t, abilities, fmt.Sprintf("business:%s:manage", businessID))
}

func TestDeriveAbilities_ElevatedBusinessUser(t *testing.T) {
	businessID := uuid.New()

	tests := []struct {
		name string
		user *entity.User
	}{
		{name: "admin level", user: newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)},
		{name: "manage_users permission", user: newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive, entity.PermissionManageUsers)},
		{name: "full_access permission", user: newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive, entity.PermissionFullAccess)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abilities := DeriveAbilities(tt.user)

			assert.Contains(t, abilities, fmt.Sprintf("business:%s:manage", businessID))
			assert.Contains(t, abilities, fmt.Sprintf("business:%s:users:manage", businessID))
			assert.Contains(t, abilities, fmt.Sprintf("business:%s:settings:update", businessID))
		})
	}
}

func TestDeriveAbilities_MultipleMemberships(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	user := newBusinessUser(first, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	user.BusinessMemberships = []*entity.BusinessUserProfile{
		user.BusinessProfile,
		{
			ID:          uuid.New(),
			UserID:      user.ID,
			BusinessID:  second,
			Status:      entity.ProfileStatusActive,
			AccessLevel: entity.BusinessLevelUser,
		},
	}

	abilities := DeriveAbilities(user)

	assert.Contains(t, abilities, fmt.Sprintf("business:%s:manage", first))
	assert.Contains(t, abilities, fmt.Sprintf("business:%s:read", second))
	assert.NotContains(t, abilities, fmt.Sprintf("business:%s:manage", second))
}

func TestDeriveAbilities_InactiveMembershipSkipped(t *testing.T) {
	businessID := uuid.New()
	user := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	inactive := uuid.New()
	user.BusinessMemberships = []*entity.BusinessUserProfile{
		user.BusinessProfile,
		{
			ID:          uuid.New(),
			UserID:      user.ID,
			BusinessID:  inactive,
			Status:      entity.ProfileStatusSuspended,
			AccessLevel: entity.BusinessLevelAdmin,
		},
	}

	abilities := DeriveAbilities(user)

	assert.NotContains(t, abilities, fmt.Sprintf("business:%s:read", inactive))
}

func TestDeriveAbilities_Deduplicated(t *testing.T) {
	user := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive, "admin:users:read")

	abilities := DeriveAbilities(user)

	seen := make(map[string]int)
	for _, a := range abilities {
		seen[a]++
	}
	for token, n := range seen {
		assert.Equal(t, 1, n, "token %q appears %d times", token, n)
	}
}
