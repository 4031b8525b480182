// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a tenant on the platform. It owns its staff memberships and
// addresses and keeps a many-to-many roster of customer profiles.
type Business struct {
	ID             uuid.UUID          // The Global Unique Identifier (GUID) for the business.
	Name           string             // The business display name.
	Slug           string             // URL-friendly unique identifier.
	CNPJ           string             // The Brazilian company registration number, digits only.
	Email          string             // The business contact email.
	Phone          string             // The business contact phone.
	Description    string             // A free-form description of the business.
	Status         BusinessStatus     // The lifecycle state of the business.
	ApprovedAt     *time.Time         // When platform staff approved the business, nil while pending.
	ApprovedBy     *uuid.UUID         // The staff user who approved the business.
	PlatformPlanID *uuid.UUID         // The subscription plan assigned to the business, nil when unassigned.
	PlatformPlan   *PlatformPlan      // The loaded plan, nil when not preloaded or unassigned.
	Customers      []*CustomerProfile // The customer roster, loaded on demand.
	CreatedAt      time.Time          // Timestamp of when this business was created.
	UpdatedAt      time.Time          // Timestamp of the last modification.
	DeletedAt      *time.Time         // Soft-delete marker.
}

// IsActive reports whether the business is in the active state.
func (b *Business) IsActive() bool {
	return b.Status == BusinessStatusActive
}

// IsPending reports whether the business awaits approval.
func (b *Business) IsPending() bool {
	return b.Status == BusinessStatusPending
}

// IsSuspended reports whether the business is suspended.
func (b *Business) IsSuspended() bool {
	return b.Status == BusinessStatusSuspended
}

// IsApproved reports whether the business has been approved and is active.
// A suspended business keeps its approval timestamp but is not approved.
func (b *Business) IsApproved() bool {
	return b.ApprovedAt != nil && b.IsActive()
}

// HasActivePlan reports whether the business carries a currently active plan.
func (b *Business) HasActivePlan() bool {
	return b.PlatformPlan != nil && b.PlatformPlan.IsActive
}

// HasCustomer reports whether the given customer profile is on the roster.
func (b *Business) HasCustomer(customerProfileID uuid.UUID) bool {
	for _, c := range b.Customers {
		if c.ID == customerProfileID {
			return true
		}
	}

	return false
}

// FormattedCNPJ returns the CNPJ in the "12.345.678/0001-90" display form
// when it holds exactly fourteen digits, otherwise the raw value.
func (b *Business) FormattedCNPJ() string {
	if len(b.CNPJ) != 14 {
		return b.CNPJ
	}

	return b.CNPJ[:2] + "." + b.CNPJ[2:5] + "." + b.CNPJ[5:8] + "/" + b.CNPJ[8:12] + "-" + b.CNPJ[12:]
}
