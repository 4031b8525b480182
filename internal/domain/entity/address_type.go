// Package entity contains the core business objects of the project.
package entity

// AddressType classifies an address by its purpose.
// An owner may hold at most one address of each type.
type AddressType string

const (
	AddressTypeResidential AddressType = "residential"
	AddressTypeCommercial  AddressType = "commercial"
	AddressTypeBilling     AddressType = "billing"
	AddressTypeShipping    AddressType = "shipping"
)

// String returns the string representation of the AddressType.
func (t AddressType) String() string {
	return string(t)
}

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeResidential, AddressTypeCommercial, AddressTypeBilling, AddressTypeShipping:
		return true
	default:
		return false
	}
}
