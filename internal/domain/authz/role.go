package authz

import "plaza/internal/domain/entity"

// DeriveRoles computes the coarse role tags for the given user.
// Tags combine across the customer/business/staff axes, but staff level
// tags are mutually exclusive: a user never carries two of them.
func DeriveRoles(user *entity.User) entity.Roles {
	roles := make(entity.Roles, 0, 3)

	if user.IsCustomer() {
		roles = append(roles, entity.RoleCustomer)
	}

	if user.IsBusinessUser() {
		roles = append(roles, entity.RoleBusinessUser)

		for _, m := range user.ActiveMemberships() {
			if m.IsElevated() {
				roles = append(roles, entity.RoleBusinessAdmin)

				break
			}
		}
	}

	if user.IsStaff() {
		switch {
		case user.StaffProfile.IsAdmin():
			roles = append(roles, entity.RoleStaffAdmin)
		case user.StaffProfile.IsAdvanced():
			roles = append(roles, entity.RoleStaffAdvanced)
		default:
			roles = append(roles, entity.RoleStaffBasic)
		}
	}

	return roles
}
