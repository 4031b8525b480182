// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Exactly one profile pointer is non-nil, matching ProfileKind; a user whose
// profile kind is set but whose profile row is missing is treated as having
// no effective role.
type User struct {
	ID                  uuid.UUID              // The Global Unique Identifier (GUID) for the user.
	Email               string                 // The user's primary contact email, used as the login identifier.
	Name                string                 // The user's display name or real name.
	Password            string                 // The bcrypt hash of the credential, never the plaintext.
	Active              bool                   // Account-level switch; a deactivated account cannot open sessions.
	ProfileKind         ProfileKind            // Which kind of profile this account carries.
	CustomerProfile     *CustomerProfile       // Non-nil only when ProfileKind is customer.
	BusinessProfile     *BusinessUserProfile   // Non-nil only when ProfileKind is business.
	StaffProfile        *StaffUserProfile      // Non-nil only when ProfileKind is staff.
	BusinessMemberships []*BusinessUserProfile // Every business membership of this user, active or not.
	CreatedAt           time.Time              // Timestamp of when this user account was created.
	UpdatedAt           time.Time              // Timestamp of the last modification to this user's data.
}

// IsCustomer reports whether the user carries a customer profile.
// Kind discrimination only; profile status does not matter here.
func (u *User) IsCustomer() bool {
	return u.ProfileKind == ProfileKindCustomer && u.CustomerProfile != nil
}

// IsBusinessUser reports whether the user carries an active business profile.
// Unlike the customer and staff predicates this one requires the profile
// status to be active: a suspended membership loses all business-scoped
// capability even though the profile row still exists.
func (u *User) IsBusinessUser() bool {
	return u.ProfileKind == ProfileKindBusiness && u.BusinessProfile != nil && u.BusinessProfile.IsActive()
}

// IsStaff reports whether the user carries a staff profile.
// Kind discrimination only, mirroring IsCustomer.
func (u *User) IsStaff() bool {
	return u.ProfileKind == ProfileKindStaff && u.StaffProfile != nil
}

// IsPremiumCustomer reports whether the user is a customer at premium level or above.
func (u *User) IsPremiumCustomer() bool {
	return u.IsCustomer() && (u.CustomerProfile.IsPremium() || u.CustomerProfile.IsVIP())
}

// IsVIPCustomer reports whether the user is a customer at the vip level.
func (u *User) IsVIPCustomer() bool {
	return u.IsCustomer() && u.CustomerProfile.IsVIP()
}

// IsBusinessAdmin reports whether the user is a business user at the admin level.
func (u *User) IsBusinessAdmin() bool {
	return u.IsBusinessUser() && u.BusinessProfile.IsAdmin()
}

// IsBusinessManager reports whether the user is a business user at the manager level.
func (u *User) IsBusinessManager() bool {
	return u.IsBusinessUser() && u.BusinessProfile.IsManager()
}

// IsElevatedBusinessUser reports whether the user is a business user with
// admin level or one of the elevated permissions.
func (u *User) IsElevatedBusinessUser() bool {
	return u.IsBusinessUser() && u.BusinessProfile.IsElevated()
}

// IsStaffAdmin reports whether the user is a staff member at the admin level.
func (u *User) IsStaffAdmin() bool {
	return u.IsStaff() && u.StaffProfile.IsAdmin()
}

// IsAdvancedStaff reports whether the user is a staff member at advanced level or above.
func (u *User) IsAdvancedStaff() bool {
	return u.IsStaff() && (u.StaffProfile.IsAdvanced() || u.StaffProfile.IsAdmin())
}

// BusinessID returns the business the user belongs to, or uuid.Nil when the
// user has no business profile.
func (u *User) BusinessID() uuid.UUID {
	if u.BusinessProfile == nil {
		return uuid.Nil
	}
	return u.BusinessProfile.BusinessID
}

// BelongsToBusiness reports whether the user's active business profile is
// attached to the given business.
func (u *User) BelongsToBusiness(businessID uuid.UUID) bool {
	return u.IsBusinessUser() && u.BusinessProfile.BusinessID == businessID
}

// ActiveMemberships returns the user's active business memberships.
// When the membership list is not loaded it falls back to the primary
// business profile, so callers see a consistent view either way.
func (u *User) ActiveMemberships() []*BusinessUserProfile {
	source := u.BusinessMemberships
	if len(source) == 0 && u.BusinessProfile != nil {
		source = []*BusinessUserProfile{u.BusinessProfile}
	}

	active := make([]*BusinessUserProfile, 0, len(source))
	for _, m := range source {
		if m != nil && m.IsActive() {
			active = append(active, m)
		}
	}

	return active
}
