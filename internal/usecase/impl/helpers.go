// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadActor resolves the acting user with every business membership
// preloaded, so the policies see the full picture.
func loadActor(ctx context.Context, factory repository.RepositoryFactory, actorID uuid.UUID) (*entity.User, error) {
	actor, err := factory.NewUserRepository().FindByIDWithMemberships(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "actor not found")
		}

		return nil, errors.Wrap(err, "failed to load actor")
	}

	return actor, nil
}

// resolveAddressOwner fetches the polymorphic owner of an address for the
// ownership policy. A missing owner row yields the empty owner, which the
// policy treats as an orphaned address and denies.
func resolveAddressOwner(ctx context.Context, factory repository.RepositoryFactory, address *entity.Address) (authz.AddressOwner, error) {
	switch address.OwnerKind {
	case entity.OwnerKindBusiness:
		business, err := factory.NewBusinessRepository().FindByID(ctx, address.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return authz.AddressOwner{}, nil
			}

			return authz.AddressOwner{}, errors.Wrap(err, "failed to resolve business address owner")
		}

		return authz.AddressOwner{Business: business}, nil
	case entity.OwnerKindCustomerProfile:
		customer, err := factory.NewCustomerProfileRepository().FindByIDWithBusinesses(ctx, address.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return authz.AddressOwner{}, nil
			}

			return authz.AddressOwner{}, errors.Wrap(err, "failed to resolve customer address owner")
		}

		return authz.AddressOwner{Customer: customer}, nil
	default:
		return authz.AddressOwner{}, nil
	}
}
