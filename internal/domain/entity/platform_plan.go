// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Billing cycle values for a platform plan.
const (
	BillingCycleFree     = "free"
	BillingCycleMonthly  = "monthly"
	BillingCycleYearly   = "yearly"
	BillingCycleLifetime = "lifetime"
)

// PlatformPlan is a subscription tier assignable to businesses.
// A nil limit means that dimension is unlimited.
type PlatformPlan struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the plan.
	Name         string    // The plan display name.
	Slug         string    // URL-friendly unique identifier.
	Description  string    // A free-form description of the plan.
	Price        float64   // The price per billing cycle, in BRL.
	BillingCycle string    // One of free, monthly, yearly or lifetime.
	Features     []string  // Feature flags included in this plan.
	MaxUsers     *int      // Maximum business staff accounts, nil for unlimited.
	MaxCustomers *int      // Maximum roster customers, nil for unlimited.
	IsActive     bool      // Whether the plan is currently offered and enforced.
	IsFeatured   bool      // Whether the plan is highlighted in listings.
	SortOrder    int       // Display ordering weight.
	CreatedAt    time.Time // Timestamp of when this plan was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsFree reports whether the plan costs nothing.
func (p *PlatformPlan) IsFree() bool {
	return p.Price == 0 || p.BillingCycle == BillingCycleFree
}

// HasUnlimitedUsers reports whether the plan places no cap on staff accounts.
func (p *PlatformPlan) HasUnlimitedUsers() bool {
	return p.MaxUsers == nil
}

// HasUnlimitedCustomers reports whether the plan places no cap on roster size.
func (p *PlatformPlan) HasUnlimitedCustomers() bool {
	return p.MaxCustomers == nil
}

// HasFeature reports whether the plan includes the given feature flag.
func (p *PlatformPlan) HasFeature(feature string) bool {
	return slices.Contains(p.Features, feature)
}
