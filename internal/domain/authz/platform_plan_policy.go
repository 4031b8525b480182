package authz

import "plaza/internal/domain/entity"

// PlatformPlanPolicy decides who may act on subscription plans.
// Every action is reserved for staff admins.
type PlatformPlanPolicy struct{}

// ViewAny allows staff admins only.
func (PlatformPlanPolicy) ViewAny(actor *entity.User) bool {
	return actor.IsStaffAdmin()
}

// View allows staff admins only.
func (PlatformPlanPolicy) View(actor *entity.User, _ *entity.PlatformPlan) bool {
	return actor.IsStaffAdmin()
}

// Create allows staff admins only.
func (PlatformPlanPolicy) Create(actor *entity.User) bool {
	return actor.IsStaffAdmin()
}

// Update allows staff admins only.
func (PlatformPlanPolicy) Update(actor *entity.User, _ *entity.PlatformPlan) bool {
	return actor.IsStaffAdmin()
}

// Delete allows staff admins, and only when no business is still assigned
// to the plan. The caller supplies the assignment count read in the same
// transaction as the delete.
func (PlatformPlanPolicy) Delete(actor *entity.User, _ *entity.PlatformPlan, assignedBusinesses int64) bool {
	if assignedBusinesses > 0 {
		return false
	}

	return actor.IsStaffAdmin()
}
