package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"
	mockRepo "plaza/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// txFixture bundles the transaction manager mock shared by the service tests.
type txFixture struct {
	t         *testing.T
	txManager *mockRepo.MockTransactionManager
}

func newTxFixture(t *testing.T) txFixture {
	return txFixture{t: t, txManager: mockRepo.NewMockTransactionManager(t)}
}

// onExecute arranges one Execute call. setup wires the factory mocks the
// transaction closure will touch; result is what the transaction reports back
// to the service, so error cases pass the error the closure is expected to
// produce.
func (f txFixture) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectActor wires the user repository lookup the services perform to
// resolve the acting user. The returned mock can take further expectations.
func expectActor(t *testing.T, factory *mockRepo.MockRepositoryFactory, ctx context.Context, actor *entity.User) *mockRepo.MockUserRepository {
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)
	userRepo.EXPECT().FindByIDWithMemberships(ctx, actor.ID).Return(actor, nil)

	return userRepo
}

func staffActor(level entity.StaffAccessLevel) *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:          id,
		Email:       "staff@plaza.test",
		Name:        "Staff Member",
		Active:      true,
		ProfileKind: entity.ProfileKindStaff,
		StaffProfile: &entity.StaffUserProfile{
			ID:          uuid.New(),
			UserID:      id,
			Status:      entity.ProfileStatusActive,
			AccessLevel: level,
		},
	}
}

func businessActor(businessID uuid.UUID, level entity.BusinessAccessLevel) *entity.User {
	id := uuid.New()
	membership := &entity.BusinessUserProfile{
		ID:          uuid.New(),
		UserID:      id,
		BusinessID:  businessID,
		Status:      entity.ProfileStatusActive,
		AccessLevel: level,
	}

	return &entity.User{
		ID:                  id,
		Email:               "member@plaza.test",
		Name:                "Business Member",
		Active:              true,
		ProfileKind:         entity.ProfileKindBusiness,
		BusinessProfile:     membership,
		BusinessMemberships: []*entity.BusinessUserProfile{membership},
	}
}

func customerActor() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:          id,
		Email:       "customer@plaza.test",
		Name:        "Customer",
		Active:      true,
		ProfileKind: entity.ProfileKindCustomer,
		CustomerProfile: &entity.CustomerProfile{
			ID:          uuid.New(),
			UserID:      id,
			Status:      entity.ProfileStatusActive,
			AccessLevel: entity.CustomerLevelBasic,
		},
	}
}

func intPtr(v int) *int {
	return &v
}
