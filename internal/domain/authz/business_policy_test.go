package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plaza/internal/domain/entity"
)

func TestBusinessPolicy_View(t *testing.T) {
	policy := BusinessPolicy{}
	business := &entity.Business{ID: uuid.New()}

	assert.True(t, policy.View(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), business))
	assert.False(t, policy.View(newStaff(entity.StaffLevelBasic, entity.ProfileStatusActive), business))

	member := newBusinessUser(business.ID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	assert.True(t, policy.View(member, business))

	outsider := newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.False(t, policy.View(outsider, business))

	assert.False(t, policy.View(newCustomer(entity.CustomerLevelVIP, entity.ProfileStatusActive), business))
}

func TestBusinessPolicy_Update(t *testing.T) {
	policy := BusinessPolicy{}
	business := &entity.Business{ID: uuid.New()}

	assert.True(t, policy.Update(newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive), business))
	assert.False(t, policy.Update(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), business))

	ownAdmin := newBusinessUser(business.ID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.True(t, policy.Update(ownAdmin, business))

	ownManager := newBusinessUser(business.ID, entity.BusinessLevelManager, entity.ProfileStatusActive)
	assert.False(t, policy.Update(ownManager, business))

	foreignAdmin := newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.False(t, policy.Update(foreignAdmin, business))
}

func TestBusinessPolicy_StaffAdminOnlyActions(t *testing.T) {
	policy := BusinessPolicy{}
	business := &entity.Business{ID: uuid.New()}
	staffAdmin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)
	businessAdmin := newBusinessUser(business.ID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)

	assert.True(t, policy.Create(staffAdmin))
	assert.True(t, policy.Delete(staffAdmin, business))
	assert.True(t, policy.Approve(staffAdmin, business))
	assert.True(t, policy.ManagePlans(staffAdmin, business))

	assert.False(t, policy.Create(businessAdmin))
	assert.False(t, policy.Delete(businessAdmin, business))
	assert.False(t, policy.Approve(businessAdmin, business))
	assert.False(t, policy.ManagePlans(businessAdmin, business))
}

func TestPlatformPlanPolicy_AdminOnly(t *testing.T) {
	policy := PlatformPlanPolicy{}
	plan := &entity.PlatformPlan{ID: uuid.New()}
	staffAdmin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)

	assert.True(t, policy.ViewAny(staffAdmin))
	assert.True(t, policy.View(staffAdmin, plan))
	assert.True(t, policy.Create(staffAdmin))
	assert.True(t, policy.Update(staffAdmin, plan))

	for _, u := range []*entity.User{
		newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive),
		newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive),
		newCustomer(entity.CustomerLevelVIP, entity.ProfileStatusActive),
	} {
		assert.False(t, policy.ViewAny(u))
		assert.False(t, policy.View(u, plan))
		assert.False(t, policy.Create(u))
		assert.False(t, policy.Update(u, plan))
	}
}

func TestPlatformPlanPolicy_DeleteBlockedWhileAssigned(t *testing.T) {
	policy := PlatformPlanPolicy{}
	plan := &entity.PlatformPlan{ID: uuid.New()}
	staffAdmin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)

	assert.True(t, policy.Delete(staffAdmin, plan, 0))
	assert.False(t, policy.Delete(staffAdmin, plan, 1))
	assert.False(t, policy.Delete(staffAdmin, plan, 12))
	assert.False(t, policy.Delete(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), plan, 0))
}
