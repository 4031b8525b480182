// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Address is the core entity for a postal location.
// It is owned by exactly one polymorphic parent, either a Business or a
// CustomerProfile, and at most one address per owner carries the primary flag.
type Address struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the address.
	OwnerID      uuid.UUID   // The ID of the entity that owns this address.
	OwnerKind    OwnerKind   // The kind of the owner, business or customer_profile.
	Type         AddressType // The address category: residential, commercial, billing or shipping.
	Street       string      // The street name.
	Number       string      // The street number, free-form to allow values like "s/n".
	Complement   string      // Optional unit, suite or floor information.
	Neighborhood string      // The neighborhood or district.
	City         string      // The city name.
	State        string      // The state or province code.
	ZipCode      string      // The postal code, digits only.
	Country      string      // The ISO 3166-1 alpha-2 country code, defaults to "BR".
	Latitude     *float64    // Optional geographic latitude.
	Longitude    *float64    // Optional geographic longitude.
	IsPrimary    bool        // Indicates if this is the primary address for the owner.
	CreatedAt    time.Time   // Timestamp of when this address was created.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// OwnedByBusiness reports whether the address belongs to a business.
func (a *Address) OwnedByBusiness() bool {
	return a.OwnerKind == OwnerKindBusiness
}

// OwnedByCustomer reports whether the address belongs to a customer profile.
func (a *Address) OwnedByCustomer() bool {
	return a.OwnerKind == OwnerKindCustomerProfile
}

// FullAddress renders the address as a single human-readable line.
// The country is appended only when it is not the default "BR".
func (a *Address) FullAddress() string {
	line := fmt.Sprintf("%s, %s", a.Street, a.Number)
	if a.Complement != "" {
		line += ", " + a.Complement
	}

	line += fmt.Sprintf(", %s, %s - %s, %s", a.Neighborhood, a.City, a.State, a.ZipCode)
	if a.Country != "BR" {
		line += ", " + a.Country
	}

	return line
}

// FormattedZipCode returns the zip code in the "12345-678" display form
// when it holds exactly eight digits, otherwise the raw value.
func (a *Address) FormattedZipCode() string {
	if len(a.ZipCode) == 8 {
		return a.ZipCode[:5] + "-" + a.ZipCode[5:]
	}

	return a.ZipCode
}
