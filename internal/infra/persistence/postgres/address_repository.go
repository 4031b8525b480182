// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for an owner.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAddressType
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner retrieves all addresses for a specific owner.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) ([]*entity.Address, error) {
	var addressMs []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ?", ownerID, string(ownerKind)).
		Order("created_at, id").
		Find(&addressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.Address, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindPrimaryAddressByOwner retrieves the primary address for a specific owner.
func (repo *addressRepository) FindPrimaryAddressByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ? AND is_primary = ?", ownerID, string(ownerKind), true).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find primary address")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressByOwnerAndType retrieves the owner's address of the given type.
func (repo *addressRepository) FindAddressByOwnerAndType(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind, addressType entity.AddressType) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ? AND type = ?", ownerID, string(ownerKind), string(addressType)).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by type")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select(
			"type", "street", "number", "complement", "neighborhood",
			"city", "state", "zip_code", "country", "latitude", "longitude", "is_primary",
		).
		Updates(addressM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAddressType
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddressesByOwner removes every address of an owner. Used by cascade deletes.
func (repo *addressRepository) DeleteAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) error {
	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ?", ownerID, string(ownerKind)).
		Delete(&model.AddressModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete owner addresses")
	}

	return nil
}

// CountAddressesByOwner returns the total count of addresses for a specific owner.
func (repo *addressRepository) CountAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_id = ? AND owner_kind = ?", ownerID, string(ownerKind)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count owner addresses")
	}

	return count, nil
}

// DemoteSiblings clears the primary flag on every address of the owner except
// the given one. A single UPDATE keeps the flag change atomic with respect to
// other writers in the same transaction.
func (repo *addressRepository) DemoteSiblings(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind, keepID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_id = ? AND owner_kind = ? AND id <> ? AND is_primary = ?", ownerID, string(ownerKind), keepID, true).
		Update("is_primary", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to demote sibling addresses")
	}

	return nil
}

// FindFirstSibling returns the owner's oldest remaining address excluding the
// given one, ordering by creation time then ID so the pick is deterministic.
func (repo *addressRepository) FindFirstSibling(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind, excludeID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND owner_kind = ? AND id <> ?", ownerID, string(ownerKind), excludeID).
		Order("created_at, id").
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find sibling address")
	}

	return toAddressDomain(&addressM), nil
}

// LockOwnerAddresses acquires FOR UPDATE row locks on the owner's address set
// for the remainder of the transaction, serializing concurrent primary-flag
// writers.
func (repo *addressRepository) LockOwnerAddresses(ctx context.Context, ownerID uuid.UUID, ownerKind entity.OwnerKind) error {
	var ids []uuid.UUID

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND owner_kind = ?", ownerID, string(ownerKind)).
		Pluck("id", &ids).Error
	if err != nil {
		return errors.Wrap(err, "failed to lock owner addresses")
	}

	return nil
}

// toAddressDomain maps the persistence model back to a pure domain entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		OwnerKind:    entity.OwnerKind(data.OwnerKind),
		Type:         entity.AddressType(data.Type),
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		ZipCode:      data.ZipCode,
		Country:      data.Country,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsPrimary:    data.IsPrimary,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAddressDomain maps a pure domain entity to a GORM persistence model.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		OwnerKind:    string(data.OwnerKind),
		Type:         string(data.Type),
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		ZipCode:      data.ZipCode,
		Country:      data.Country,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsPrimary:    data.IsPrimary,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
