// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/errors"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessFilter narrows down business listings.
type BusinessFilter struct {
	Status *entity.BusinessStatus
	Name   string
	CNPJ   string
	Limit  int
	Offset int
}

// BusinessRepository defines the interface for business-related database operations,
// including the customer roster association.
type BusinessRepository interface {
	// FindByID retrieves a business by its unique ID, with its plan preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBySlug retrieves a business by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// FindByCNPJ retrieves a business by its registration number.
	FindByCNPJ(ctx context.Context, cnpj string) (*entity.Business, error)

	// List retrieves businesses matching the filter.
	List(ctx context.Context, filter BusinessFilter) ([]*entity.Business, error)

	// Create persists a new business.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business.
	Update(ctx context.Context, business *entity.Business) error

	// Delete soft-deletes a business by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByPlan returns how many businesses are assigned to the given plan.
	CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error)

	// AttachCustomer adds a customer profile to the business roster.
	// Attaching an already attached customer is a no-op.
	AttachCustomer(ctx context.Context, businessID, customerProfileID uuid.UUID) error

	// DetachCustomer removes a customer profile from the business roster.
	DetachCustomer(ctx context.Context, businessID, customerProfileID uuid.UUID) error

	// DetachAllCustomers clears the business roster. Used by cascade deletes.
	DetachAllCustomers(ctx context.Context, businessID uuid.UUID) error

	// HasCustomer reports whether the customer profile is on the business roster.
	HasCustomer(ctx context.Context, businessID, customerProfileID uuid.UUID) (bool, error)

	// ListCustomers retrieves the customer profiles on the business roster.
	ListCustomers(ctx context.Context, businessID uuid.UUID) ([]*entity.CustomerProfile, error)

	// CountCustomers returns the live size of the business roster.
	CountCustomers(ctx context.Context, businessID uuid.UUID) (int64, error)
}
