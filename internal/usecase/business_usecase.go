// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateBusinessInput defines the data required to register a business.
// New businesses start in the pending state until staff approve them.
type CreateBusinessInput struct {
	Name        string
	Slug        string
	CNPJ        string
	Email       string
	Phone       string
	Description string
}

// UpdateBusinessInput defines the mutable business fields. Nil pointers leave
// the field untouched.
type UpdateBusinessInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Description *string
}

// BusinessStats aggregates live usage numbers for a business against its plan.
type BusinessStats struct {
	UserCount     int64
	CustomerCount int64
	UserLimit     *int
	CustomerLimit *int
	PlanName      string
}

// BusinessUsecase defines the interface for business lifecycle and roster operations.
type BusinessUsecase interface {
	// CreateBusiness registers a new pending business.
	CreateBusiness(ctx context.Context, actorID uuid.UUID, input *CreateBusinessInput) (*entity.Business, error)

	// GetBusiness retrieves a business the actor is allowed to view.
	GetBusiness(ctx context.Context, actorID, businessID uuid.UUID) (*entity.Business, error)

	// ListBusinesses retrieves businesses matching the filter.
	ListBusinesses(ctx context.Context, actorID uuid.UUID, filter repository.BusinessFilter) ([]*entity.Business, error)

	// UpdateBusiness modifies a business the actor is allowed to update.
	UpdateBusiness(ctx context.Context, actorID, businessID uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// ApproveBusiness marks a pending business approved and active, records
	// the approving staff member, and notifies the business's admins.
	ApproveBusiness(ctx context.Context, actorID, businessID uuid.UUID) (*entity.Business, error)

	// SuspendBusiness suspends an active business.
	SuspendBusiness(ctx context.Context, actorID, businessID uuid.UUID) (*entity.Business, error)

	// AssignPlan attaches a platform plan to the business.
	AssignPlan(ctx context.Context, actorID, businessID, planID uuid.UUID) (*entity.Business, error)

	// DeleteBusiness removes a business and all its dependents in one
	// transaction: members' sessions, member accounts, memberships, the
	// roster associations, the addresses, and finally the business itself.
	DeleteBusiness(ctx context.Context, actorID, businessID uuid.UUID) error

	// GetBusinessStats returns live usage counts against the plan limits.
	GetBusinessStats(ctx context.Context, actorID, businessID uuid.UUID) (*BusinessStats, error)

	// AttachCustomer adds a customer to the business roster, gated by the
	// plan's customer limit.
	AttachCustomer(ctx context.Context, actorID, businessID, customerProfileID uuid.UUID) error

	// DetachCustomer removes a customer from the business roster.
	DetachCustomer(ctx context.Context, actorID, businessID, customerProfileID uuid.UUID) error

	// ListRosterCustomers retrieves the customer profiles on the roster.
	ListRosterCustomers(ctx context.Context, actorID, businessID uuid.UUID) ([]*entity.CustomerProfile, error)

	// GenerateRosterInvite renders a QR code customers scan to join the roster.
	GenerateRosterInvite(ctx context.Context, actorID, businessID uuid.UUID) ([]byte, error)

	// JoinRosterByInvite parses an invite QR payload and attaches the calling
	// customer to the encoded business's roster, gated by the customer limit.
	JoinRosterByInvite(ctx context.Context, actorID uuid.UUID, qrData string) error
}
