// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to record an address for a
// polymorphic owner.
type CreateAddressInput struct {
	OwnerID      uuid.UUID
	OwnerKind    entity.OwnerKind
	Type         entity.AddressType
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Country      string
	Latitude     *float64
	Longitude    *float64
	IsPrimary    bool
}

// UpdateAddressInput defines the mutable address fields. Nil pointers leave
// the field untouched. Changing Type is subject to the one-address-per-type rule.
type UpdateAddressInput struct {
	Type         *entity.AddressType
	Street       *string
	Number       *string
	Complement   *string
	Neighborhood *string
	City         *string
	State        *string
	ZipCode      *string
	Country      *string
	Latitude     *float64
	Longitude    *float64
	IsPrimary    *bool
}

// AddressUsecase defines the interface for address operations. Writes run
// inside a transaction that keeps at most one primary address per owner.
type AddressUsecase interface {
	// ListAddresses retrieves the addresses of an owner the actor may view.
	ListAddresses(ctx context.Context, actorID uuid.UUID, ownerID uuid.UUID, ownerKind entity.OwnerKind) ([]*entity.Address, error)

	// GetAddress retrieves a single address the actor may view.
	GetAddress(ctx context.Context, actorID, addressID uuid.UUID) (*entity.Address, error)

	// CreateAddress records a new address. When the incoming record is
	// primary, every sibling of the owner is demoted in the same transaction.
	CreateAddress(ctx context.Context, actorID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)

	// UpdateAddress modifies an address under the same invariants as create.
	UpdateAddress(ctx context.Context, actorID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)

	// DeleteAddress removes an address. When the deleted address was primary
	// and siblings remain, the oldest sibling is promoted.
	DeleteAddress(ctx context.Context, actorID, addressID uuid.UUID) error

	// SetPrimaryAddress marks the address primary and demotes its siblings
	// in one transaction.
	SetPrimaryAddress(ctx context.Context, actorID, addressID uuid.UUID) (*entity.Address, error)
}
