// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a platform plan is not found.
var ErrPlanNotFound = errors.New("platform plan not found")

// PlatformPlanRepository defines the interface for subscription plan persistence.
type PlatformPlanRepository interface {
	// FindByID retrieves a plan by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PlatformPlan, error)

	// FindBySlug retrieves a plan by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.PlatformPlan, error)

	// List retrieves every plan ordered by sort order then name.
	List(ctx context.Context) ([]*entity.PlatformPlan, error)

	// ListActive retrieves only currently offered plans, same ordering as List.
	ListActive(ctx context.Context) ([]*entity.PlatformPlan, error)

	// Create persists a new plan.
	Create(ctx context.Context, plan *entity.PlatformPlan) error

	// Update modifies an existing plan.
	Update(ctx context.Context, plan *entity.PlatformPlan) error

	// Delete removes a plan by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
