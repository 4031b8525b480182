// Package entity contains the core business objects of the project.
package entity

// OwnerKind represents the type of entity that can own an address.
// Address ownership is polymorphic: the (OwnerKind, OwnerID) pair
// identifies exactly one owning entity.
type OwnerKind string

const (
	// OwnerKindBusiness indicates the address belongs to a business.
	OwnerKindBusiness OwnerKind = "business"
	// OwnerKindCustomerProfile indicates the address belongs to a customer profile.
	OwnerKindCustomerProfile OwnerKind = "customer_profile"
)

// String returns the string representation of the OwnerKind.
func (o OwnerKind) String() string {
	return string(o)
}

// IsValid checks if the OwnerKind is a valid value.
func (o OwnerKind) IsValid() bool {
	switch o {
	case OwnerKindBusiness, OwnerKindCustomerProfile:
		return true
	default:
		return false
	}
}
