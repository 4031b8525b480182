// Package entity contains the core business objects of the project.
package entity

// ProfileKind represents the kind of profile a user is linked to.
// A user has exactly one profile kind, fixed at creation.
type ProfileKind string

const (
	// ProfileKindCustomer indicates the user is a platform customer.
	ProfileKindCustomer ProfileKind = "customer"
	// ProfileKindBusiness indicates the user is a member of a business.
	ProfileKindBusiness ProfileKind = "business"
	// ProfileKindStaff indicates the user is platform staff.
	ProfileKindStaff ProfileKind = "staff"
)

// String returns the string representation of the ProfileKind.
func (k ProfileKind) String() string {
	return string(k)
}

// IsValid checks if the ProfileKind is a valid value.
func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileKindCustomer, ProfileKindBusiness, ProfileKindStaff:
		return true
	default:
		return false
	}
}
