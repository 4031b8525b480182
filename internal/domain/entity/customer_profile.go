// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerProfile holds data specific to the "customer" profile kind.
type CustomerProfile struct {
	ID          uuid.UUID           // The Global Unique Identifier (GUID) for the profile.
	UserID      uuid.UUID           // Foreign Key that links this profile to a core User entity.
	CPF         *string             // The customer's national ID (CPF). Optional, unique when present.
	BirthDate   *time.Time          // The customer's birth date.
	Status      ProfileStatus       // The lifecycle state of the profile.
	AccessLevel CustomerAccessLevel // The customer's tier: basic, premium or vip.
	Businesses  []*Business         // Businesses holding this customer on their roster (many-to-many).
	CreatedAt   time.Time           // Timestamp of when this profile was created.
	UpdatedAt   time.Time           // Timestamp of the last modification.
}

// IsActive reports whether the profile is in the active state.
func (p *CustomerProfile) IsActive() bool {
	return p.Status == ProfileStatusActive
}

// IsBasic reports whether the customer is on the basic tier.
func (p *CustomerProfile) IsBasic() bool {
	return p.AccessLevel == CustomerLevelBasic
}

// IsPremium reports whether the customer is on the premium tier.
func (p *CustomerProfile) IsPremium() bool {
	return p.AccessLevel == CustomerLevelPremium
}

// IsVIP reports whether the customer is on the vip tier.
func (p *CustomerProfile) IsVIP() bool {
	return p.AccessLevel == CustomerLevelVIP
}

// IsOnRosterOf reports whether this customer is on the given business's roster.
// It only consults the preloaded roster; callers must load Businesses first.
func (p *CustomerProfile) IsOnRosterOf(businessID uuid.UUID) bool {
	for _, b := range p.Businesses {
		if b != nil && b.ID == businessID {
			return true
		}
	}

	return false
}
