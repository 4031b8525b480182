// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlanInput defines the data required to create a subscription plan.
// Nil limits mean the dimension is unlimited.
type CreatePlanInput struct {
	Name         string
	Slug         string
	Description  string
	Price        float64
	BillingCycle string
	Features     []string
	MaxUsers     *int
	MaxCustomers *int
	IsFeatured   bool
	SortOrder    int
}

// UpdatePlanInput defines the mutable plan fields. Nil pointers leave the
// field untouched; ClearMaxUsers/ClearMaxCustomers lift the cap explicitly
// since a nil pointer already means "no change".
type UpdatePlanInput struct {
	Name              *string
	Description       *string
	Price             *float64
	BillingCycle      *string
	Features          []string
	MaxUsers          *int
	ClearMaxUsers     bool
	MaxCustomers      *int
	ClearMaxCustomers bool
	IsActive          *bool
	IsFeatured        *bool
	SortOrder         *int
}

// PlanUsecase defines the interface for subscription plan management.
// Every operation is restricted to staff admins by policy.
type PlanUsecase interface {
	// ListPlans retrieves every plan.
	ListPlans(ctx context.Context, actorID uuid.UUID) ([]*entity.PlatformPlan, error)

	// GetPlan retrieves a single plan.
	GetPlan(ctx context.Context, actorID, planID uuid.UUID) (*entity.PlatformPlan, error)

	// CreatePlan creates a new plan.
	CreatePlan(ctx context.Context, actorID uuid.UUID, input *CreatePlanInput) (*entity.PlatformPlan, error)

	// UpdatePlan modifies an existing plan.
	UpdatePlan(ctx context.Context, actorID, planID uuid.UUID, input *UpdatePlanInput) (*entity.PlatformPlan, error)

	// DeletePlan removes a plan. Deletion is rejected while any business is
	// still assigned to the plan.
	DeletePlan(ctx context.Context, actorID, planID uuid.UUID) error
}
