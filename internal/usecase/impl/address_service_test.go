package impl

import (
	"context"
	"testing"

	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	mockRepo "plaza/internal/mocks/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	txFixture
	service usecase.AddressUsecase
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	f := newTxFixture(t)
	service := NewAddressService(AddressServiceParams{
		TxManager: f.txManager,
		Policies:  authz.NewPolicies(),
		Logger:    testLogger(),
	})

	return addressServiceFixtures{txFixture: f, service: service}
}

// expectCustomerOwner wires the owner resolution for addresses held by the
// actor's own customer profile.
func expectCustomerOwner(t *testing.T, factory *mockRepo.MockRepositoryFactory, ctx context.Context, actor *entity.User) {
	customerRepo := mockRepo.NewMockCustomerProfileRepository(t)
	factory.EXPECT().NewCustomerProfileRepository().Return(customerRepo)
	customerRepo.EXPECT().FindByIDWithBusinesses(ctx, actor.CustomerProfile.ID).Return(actor.CustomerProfile, nil)
}

func TestAddressService_CreateAddress_PrimaryDemotesSiblings(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	input := &usecase.CreateAddressInput{
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeResidential,
		Street:    "Rua das Flores",
		Number:    "100",
		City:      "São Paulo",
		State:     "SP",
		ZipCode:   "01001000",
		IsPrimary: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, input.OwnerID, input.OwnerKind).Return(nil)
		addressRepo.EXPECT().
			FindAddressByOwnerAndType(ctx, input.OwnerID, input.OwnerKind, input.Type).
			Return(nil, repository.ErrAddressNotFound)
		addressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
		addressRepo.EXPECT().
			DemoteSiblings(ctx, input.OwnerID, input.OwnerKind, mock.AnythingOfType("uuid.UUID")).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, actor.ID, input)

	require.NoError(t, err)
	assert.True(t, address.IsPrimary)
	assert.Equal(t, "BR", address.Country)
}

func TestAddressService_CreateAddress_NonPrimarySkipsDemotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	input := &usecase.CreateAddressInput{
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeShipping,
		Street:    "Rua das Flores",
		Number:    "100",
		City:      "São Paulo",
		State:     "SP",
		ZipCode:   "01001000",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, input.OwnerID, input.OwnerKind).Return(nil)
		addressRepo.EXPECT().
			FindAddressByOwnerAndType(ctx, input.OwnerID, input.OwnerKind, input.Type).
			Return(nil, repository.ErrAddressNotFound)
		addressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, actor.ID, input)

	require.NoError(t, err)
	assert.False(t, address.IsPrimary)
}

func TestAddressService_CreateAddress_DuplicateType(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	input := &usecase.CreateAddressInput{
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeResidential,
	}
	existing := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		OwnerKind: input.OwnerKind,
		Type:      input.Type,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDuplicateAddressType, "owner already has an address of this type"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, input.OwnerID, input.OwnerKind).Return(nil)
		addressRepo.EXPECT().
			FindAddressByOwnerAndType(ctx, input.OwnerID, input.OwnerKind, input.Type).
			Return(existing, nil)
	})

	_, err := fx.service.CreateAddress(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAddressType))
}

func TestAddressService_CreateAddress_InvalidKind(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), &usecase.CreateAddressInput{
		OwnerID:   uuid.New(),
		OwnerKind: "warehouse",
		Type:      entity.AddressTypeResidential,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAddressService_CreateAddress_ForeignOwnerForbidden(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	otherCustomer := &entity.CustomerProfile{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: entity.ProfileStatusActive,
	}
	input := &usecase.CreateAddressInput{
		OwnerID:   otherCustomer.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeResidential,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not write this owner's addresses"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		customerRepo := mockRepo.NewMockCustomerProfileRepository(t)
		factory.EXPECT().NewCustomerProfileRepository().Return(customerRepo)
		customerRepo.EXPECT().FindByIDWithBusinesses(ctx, otherCustomer.ID).Return(otherCustomer, nil)
	})

	_, err := fx.service.CreateAddress(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAddressService_DeleteAddress_PromotesOldestSibling(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	address := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeResidential,
		IsPrimary: true,
	}
	sibling := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   address.OwnerID,
		OwnerKind: address.OwnerKind,
		Type:      entity.AddressTypeShipping,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind).Return(nil)
		addressRepo.EXPECT().DeleteAddress(ctx, address.ID).Return(nil)
		addressRepo.EXPECT().FindFirstSibling(ctx, address.OwnerID, address.OwnerKind, address.ID).Return(sibling, nil)
		addressRepo.EXPECT().UpdateAddress(ctx, sibling).Return(nil)
	})

	err := fx.service.DeleteAddress(ctx, actor.ID, address.ID)

	require.NoError(t, err)
	assert.True(t, sibling.IsPrimary)
}

func TestAddressService_DeleteAddress_LastAddressNoPromotion(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	address := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeResidential,
		IsPrimary: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind).Return(nil)
		addressRepo.EXPECT().DeleteAddress(ctx, address.ID).Return(nil)
		addressRepo.EXPECT().
			FindFirstSibling(ctx, address.OwnerID, address.OwnerKind, address.ID).
			Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.DeleteAddress(ctx, actor.ID, address.ID)

	require.NoError(t, err)
}

func TestAddressService_SetPrimaryAddress_DemotesSiblings(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	address := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeShipping,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind).Return(nil)
		addressRepo.EXPECT().UpdateAddress(ctx, address).Return(nil)
		addressRepo.EXPECT().DemoteSiblings(ctx, address.OwnerID, address.OwnerKind, address.ID).Return(nil)
	})

	updated, err := fx.service.SetPrimaryAddress(ctx, actor.ID, address.ID)

	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)
}

func TestAddressService_GetAddress_OrphanedDenied(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdvanced)
	address := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		OwnerKind: entity.OwnerKindBusiness,
		Type:      entity.AddressTypeCommercial,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not view this address"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
		businessRepo.EXPECT().FindByID(ctx, address.OwnerID).Return(nil, repository.ErrBusinessNotFound)
	})

	_, err := fx.service.GetAddress(ctx, actor.ID, address.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAddressService_UpdateAddress_TypeChangeChecksUniqueness(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	actor := customerActor()
	address := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   actor.CustomerProfile.ID,
		OwnerKind: entity.OwnerKindCustomerProfile,
		Type:      entity.AddressTypeResidential,
	}
	newType := entity.AddressTypeBilling
	taken := &entity.Address{
		ID:        uuid.New(),
		OwnerID:   address.OwnerID,
		OwnerKind: address.OwnerKind,
		Type:      newType,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDuplicateAddressType, "owner already has an address of this type"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectCustomerOwner(t, factory, ctx, actor)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
		addressRepo.EXPECT().LockOwnerAddresses(ctx, address.OwnerID, address.OwnerKind).Return(nil)
		addressRepo.EXPECT().
			FindAddressByOwnerAndType(ctx, address.OwnerID, address.OwnerKind, newType).
			Return(taken, nil)
	})

	_, err := fx.service.UpdateAddress(ctx, actor.ID, address.ID, &usecase.UpdateAddressInput{Type: &newType})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAddressType))
}
