package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plaza/internal/domain/entity"
)

func TestUserPolicy_ViewSelf(t *testing.T) {
	policy := UserPolicy{}
	user := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)

	assert.True(t, policy.View(user, user))
	assert.True(t, policy.Update(user, user))
}

func TestUserPolicy_StaffAdminSeesEveryone(t *testing.T) {
	policy := UserPolicy{}
	admin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)
	target := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)

	assert.True(t, policy.View(admin, target))
	assert.True(t, policy.Update(admin, target))
}

func TestUserPolicy_BusinessAdminScopedToOwnBusiness(t *testing.T) {
	policy := UserPolicy{}
	businessID := uuid.New()
	actor := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)

	colleague := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	assert.True(t, policy.View(actor, colleague))
	assert.True(t, policy.Update(actor, colleague))

	stranger := newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive)
	assert.False(t, policy.View(actor, stranger))
	assert.False(t, policy.Update(actor, stranger))
}

func TestUserPolicy_PlainBusinessUserCannotViewColleagues(t *testing.T) {
	policy := UserPolicy{}
	businessID := uuid.New()
	actor := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	colleague := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)

	assert.False(t, policy.View(actor, colleague))
}

func TestUserPolicy_BusinessAdminSeesRosterCustomers(t *testing.T) {
	policy := UserPolicy{}
	businessID := uuid.New()
	actor := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)

	rosterCustomer := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)
	rosterCustomer.CustomerProfile.Businesses = []*entity.Business{{ID: businessID}}
	assert.True(t, policy.View(actor, rosterCustomer))

	offRosterCustomer := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)
	assert.False(t, policy.View(actor, offRosterCustomer))
}

func TestUserPolicy_Create(t *testing.T) {
	policy := UserPolicy{}

	assert.True(t, policy.Create(newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)))
	assert.False(t, policy.Create(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive)))
	assert.True(t, policy.Create(newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive)))
	assert.False(t, policy.Create(newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive)))
	assert.False(t, policy.Create(newCustomer(entity.CustomerLevelVIP, entity.ProfileStatusActive)))
}

func TestUserPolicy_DeleteNeverSelf(t *testing.T) {
	policy := UserPolicy{}
	admin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)

	assert.False(t, policy.Delete(admin, admin))
}

func TestUserPolicy_StaffAdminCannotDeleteAnotherStaffAdmin(t *testing.T) {
	policy := UserPolicy{}
	actor := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)
	otherAdmin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)

	assert.False(t, policy.Delete(actor, otherAdmin))
	assert.True(t, policy.Delete(actor, newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive)))
	assert.True(t, policy.Delete(actor, newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)))
}

func TestUserPolicy_BusinessAdminDeleteScopedToOwnBusiness(t *testing.T) {
	policy := UserPolicy{}
	businessID := uuid.New()
	actor := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)

	colleague := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	assert.True(t, policy.Delete(actor, colleague))

	stranger := newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive)
	assert.False(t, policy.Delete(actor, stranger))

	// roster customers are viewable but not deletable by business admins
	rosterCustomer := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)
	rosterCustomer.CustomerProfile.Businesses = []*entity.Business{{ID: businessID}}
	assert.False(t, policy.Delete(actor, rosterCustomer))
}
