// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDuplicateAddressType is returned when an owner already has an address of the requested type.
	ErrDuplicateAddressType = errors.New("owner already has an address of this type")
)

// AddressRepository defines the interface for address-related database operations.
// It supports polymorphic associations where addresses can belong to either a
// business or a customer profile. The demote/promote operations exist so the
// primary-flag invariant can be maintained inside a single transaction.
type AddressRepository interface {
	// CreateAddress persists a new address for an owner.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves all addresses for a specific owner.
	FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) ([]*entity.Address, error)

	// FindPrimaryAddressByOwner retrieves the primary address for a specific owner.
	// Returns ErrAddressNotFound if no primary address exists.
	FindPrimaryAddressByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) (*entity.Address, error)

	// FindAddressByOwnerAndType retrieves the owner's address of the given type.
	// Returns ErrAddressNotFound when none exists.
	FindAddressByOwnerAndType(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind, addressType entity.AddressType) (*entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// DeleteAddressesByOwner removes every address of an owner. Used by cascade deletes.
	DeleteAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) error

	// CountAddressesByOwner returns the total count of addresses for a specific owner.
	CountAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) (int64, error)

	// DemoteSiblings clears the primary flag on every address of the owner
	// except the given one. Runs as a single statement so it is atomic with
	// respect to other writers inside the same transaction.
	DemoteSiblings(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind, keepID uuid.UUID) error

	// FindFirstSibling returns the owner's oldest remaining address excluding
	// the given one, ordering by creation time then ID so the pick is
	// deterministic. Returns ErrAddressNotFound when no sibling remains.
	FindFirstSibling(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind, excludeID uuid.UUID) (*entity.Address, error)

	// LockOwnerAddresses acquires row locks on the owner's address set for the
	// remainder of the transaction, serializing concurrent primary-flag writers.
	LockOwnerAddresses(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) error
}
