// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface. Every write runs
// inside one transaction that locks the owner's address rows first, so two
// concurrent primary-flag writers for the same owner serialize.
type addressService struct {
	txManager repository.TransactionManager
	policies  *authz.Policies
	logger    *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Policies  *authz.Policies
	Logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager: params.TxManager,
		policies:  params.Policies,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses retrieves the addresses of an owner the actor may view.
func (srv *addressService) ListAddresses(ctx context.Context, actorID uuid.UUID, ownerID uuid.UUID, ownerKind entity.OwnerKind) ([]*entity.Address, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		if !srv.policies.Address.ViewAny(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not list addresses")
		}

		owner, err := srv.loadOwner(ctx, repoFactory, ownerID, ownerKind)
		if err != nil {
			return err
		}
		if !srv.policies.Address.View(actor, owner) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this owner's addresses")
		}

		addresses, err = repoFactory.NewAddressRepository().FindAddressesByOwner(ctx, ownerID, ownerKind)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner addresses")
	}

	return addresses, nil
}

// GetAddress retrieves a single address the actor may view.
func (srv *addressService) GetAddress(ctx context.Context, actorID, addressID uuid.UUID) (*entity.Address, error) {
	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findAddress(ctx, repoFactory, addressID)
		if err != nil {
			return err
		}

		owner, err := resolveAddressOwner(ctx, repoFactory, found)
		if err != nil {
			return err
		}
		if !srv.policies.Address.View(actor, owner) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this address")
		}

		address = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get address")
	}

	return address, nil
}

// CreateAddress records a new address, demoting siblings when it is primary.
func (srv *addressService) CreateAddress(ctx context.Context, actorID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Creating address",
		slog.Any("ownerID", input.OwnerID),
		slog.String("ownerKind", input.OwnerKind.String()),
		slog.String("type", input.Type.String()),
	)

	if !input.OwnerKind.IsValid() || !input.Type.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid owner kind or address type")
	}

	var created *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.Address.Create(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not create addresses")
		}

		owner, err := srv.loadOwner(ctx, repoFactory, input.OwnerID, input.OwnerKind)
		if err != nil {
			return err
		}
		if !srv.policies.Address.Update(actor, owner) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not write this owner's addresses")
		}

		addressRepo := repoFactory.NewAddressRepository()

		if err := addressRepo.LockOwnerAddresses(ctx, input.OwnerID, input.OwnerKind); err != nil {
			return errors.Wrap(err, "failed to lock owner addresses")
		}

		// one address per (owner, type)
		_, err = addressRepo.FindAddressByOwnerAndType(ctx, input.OwnerID, input.OwnerKind, input.Type)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateAddressType, "owner already has an address of this type")
		}
		if !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to check address type uniqueness")
		}

		address := buildAddress(input)

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		if address.IsPrimary {
			if err := addressRepo.DemoteSiblings(ctx, address.OwnerID, address.OwnerKind, address.ID); err != nil {
				return errors.Wrap(err, "failed to demote sibling addresses")
			}
		}

		created = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute address creation")
	}

	return created, nil
}

// UpdateAddress modifies an address under the same invariants as create.
func (srv *addressService) UpdateAddress(ctx context.Context, actorID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.findAddress(ctx, repoFactory, addressID)
		if err != nil {
			return err
		}

		owner, err := resolveAddressOwner(ctx, repoFactory, address)
		if err != nil {
			return err
		}
		if !srv.policies.Address.Update(actor, owner) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not update this address")
		}

		if err := addressRepo.LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind); err != nil {
			return errors.Wrap(err, "failed to lock owner addresses")
		}

		if input.Type != nil && *input.Type != address.Type {
			if !input.Type.IsValid() {
				return errors.Wrap(domainerrors.ErrValidationFailed, "invalid address type")
			}

			existing, err := addressRepo.FindAddressByOwnerAndType(ctx, address.OwnerID, address.OwnerKind, *input.Type)
			if err == nil && existing.ID != address.ID {
				return errors.Wrap(domainerrors.ErrDuplicateAddressType, "owner already has an address of this type")
			}
			if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(err, "failed to check address type uniqueness")
			}

			address.Type = *input.Type
		}

		applyAddressUpdate(address, input)

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		if address.IsPrimary {
			if err := addressRepo.DemoteSiblings(ctx, address.OwnerID, address.OwnerKind, address.ID); err != nil {
				return errors.Wrap(err, "failed to demote sibling addresses")
			}
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute address update")
	}

	return updated, nil
}

// DeleteAddress removes an address, promoting the oldest sibling when the
// deleted address was primary.
func (srv *addressService) DeleteAddress(ctx context.Context, actorID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.findAddress(ctx, repoFactory, addressID)
		if err != nil {
			return err
		}

		owner, err := resolveAddressOwner(ctx, repoFactory, address)
		if err != nil {
			return err
		}
		if !srv.policies.Address.Delete(actor, owner) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not delete this address")
		}

		if err := addressRepo.LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind); err != nil {
			return errors.Wrap(err, "failed to lock owner addresses")
		}

		if err := addressRepo.DeleteAddress(ctx, address.ID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		if !address.IsPrimary {
			return nil
		}

		// promote the oldest remaining sibling, if any
		sibling, err := addressRepo.FindFirstSibling(ctx, address.OwnerID, address.OwnerKind, address.ID)
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find sibling for promotion")
		}

		sibling.IsPrimary = true
		if err := addressRepo.UpdateAddress(ctx, sibling); err != nil {
			return errors.Wrap(err, "failed to promote sibling address")
		}

		srv.log(ctx).Debug("Promoted sibling to primary",
			slog.Any("ownerID", address.OwnerID),
			slog.Any("promotedID", sibling.ID),
		)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute address deletion")
	}

	return nil
}

// SetPrimaryAddress marks the address primary and demotes its siblings.
func (srv *addressService) SetPrimaryAddress(ctx context.Context, actorID, addressID uuid.UUID) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.findAddress(ctx, repoFactory, addressID)
		if err != nil {
			return err
		}

		owner, err := resolveAddressOwner(ctx, repoFactory, address)
		if err != nil {
			return err
		}
		if !srv.policies.Address.Update(actor, owner) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not update this address")
		}

		if err := addressRepo.LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind); err != nil {
			return errors.Wrap(err, "failed to lock owner addresses")
		}

		address.IsPrimary = true
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to set primary address")
		}

		if err := addressRepo.DemoteSiblings(ctx, address.OwnerID, address.OwnerKind, address.ID); err != nil {
			return errors.Wrap(err, "failed to demote sibling addresses")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute set primary address")
	}

	return updated, nil
}

func (srv *addressService) findAddress(ctx context.Context, factory repository.RepositoryFactory, id uuid.UUID) (*entity.Address, error) {
	address, err := factory.NewAddressRepository().FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address lookup")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}

func (srv *addressService) loadOwner(ctx context.Context, factory repository.RepositoryFactory, ownerID uuid.UUID, ownerKind entity.OwnerKind) (authz.AddressOwner, error) {
	probe := &entity.Address{OwnerID: ownerID, OwnerKind: ownerKind}

	return resolveAddressOwner(ctx, factory, probe)
}

func buildAddress(input *usecase.CreateAddressInput) *entity.Address {
	country := input.Country
	if country == "" {
		country = "BR"
	}

	return &entity.Address{
		ID:           uuid.New(),
		OwnerID:      input.OwnerID,
		OwnerKind:    input.OwnerKind,
		Type:         input.Type,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Country:      country,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		IsPrimary:    input.IsPrimary,
	}
}

func applyAddressUpdate(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.Number != nil {
		address.Number = *input.Number
	}
	if input.Complement != nil {
		address.Complement = *input.Complement
	}
	if input.Neighborhood != nil {
		address.Neighborhood = *input.Neighborhood
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.ZipCode != nil {
		address.ZipCode = *input.ZipCode
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
	if input.Latitude != nil {
		address.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		address.Longitude = input.Longitude
	}
	if input.IsPrimary != nil {
		address.IsPrimary = *input.IsPrimary
	}
}
