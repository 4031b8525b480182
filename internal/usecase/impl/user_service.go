// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	policies       *authz.Policies
	hasher         service.PasswordHasher
	planGate       usecase.PlanLimitGate
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Policies       *authz.Policies
	Hasher         service.PasswordHasher
	PlanGate       usecase.PlanLimitGate
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		policies:       params.Policies,
		hasher:         params.Hasher,
		planGate:       params.PlanGate,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates a user account together with its customer profile
// in one transaction. Registration is open, no actor is involved.
func (srv *userService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := srv.ensureEmailFree(ctx, userRepo, input.Email); err != nil {
			return err
		}

		if input.CPF != nil {
			if _, err := repoFactory.NewCustomerProfileRepository().FindByCPF(ctx, *input.CPF); err == nil {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "cpf already registered")
			} else if !errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return errors.Wrap(err, "failed to check cpf")
			}
		}

		user = &entity.User{
			ID:          uuid.New(),
			Email:       input.Email,
			Name:        input.Name,
			Password:    hashed,
			Active:      true,
			ProfileKind: entity.ProfileKindCustomer,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		profile := &entity.CustomerProfile{
			ID:          uuid.New(),
			UserID:      user.ID,
			CPF:         input.CPF,
			BirthDate:   input.BirthDate,
			Status:      entity.ProfileStatusActive,
			AccessLevel: entity.CustomerLevelBasic,
		}
		if err := repoFactory.NewCustomerProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create customer profile")
		}

		user.CustomerProfile = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute customer registration")
	}

	srv.log(ctx).Info("Registered customer", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// CreateBusinessUser creates a user account with a membership in the given
// business. The plan's user limit is re-checked inside the insert transaction
// so concurrent creations cannot overshoot the cap.
func (srv *userService) CreateBusinessUser(ctx context.Context, actorID uuid.UUID, input *usecase.CreateBusinessUserInput) (*usecase.RegisterOutput, error) {
	if !input.AccessLevel.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid business access level")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.User.Create(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not create accounts")
		}
		if !actor.IsStaffAdmin() && !srv.actorAdministers(actor, input.BusinessID) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not add members to this business")
		}

		decision, err := srv.planGate.CheckWithFactory(ctx, repoFactory, input.BusinessID, usecase.LimitKindUsers)
		if err != nil {
			return errors.Wrap(err, "failed to check plan user limit")
		}
		if !decision.Allowed {
			return domainerrors.NewPlanLimitError(decision.Reason, decision.CurrentLimit, decision.CurrentCount)
		}

		userRepo := repoFactory.NewUserRepository()
		if err := srv.ensureEmailFree(ctx, userRepo, input.Email); err != nil {
			return err
		}

		user = &entity.User{
			ID:          uuid.New(),
			Email:       input.Email,
			Name:        input.Name,
			Password:    hashed,
			Active:      true,
			ProfileKind: entity.ProfileKindBusiness,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		membership := &entity.BusinessUserProfile{
			ID:          uuid.New(),
			UserID:      user.ID,
			BusinessID:  input.BusinessID,
			Status:      entity.ProfileStatusActive,
			AccessLevel: input.AccessLevel,
			Permissions: input.Permissions,
		}
		if err := repoFactory.NewBusinessUserProfileRepository().Create(ctx, membership); err != nil {
			return errors.Wrap(err, "failed to create business membership")
		}

		user.BusinessProfile = membership
		user.BusinessMemberships = []*entity.BusinessUserProfile{membership}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business user creation")
	}

	srv.log(ctx).Info("Created business user",
		slog.Any("userID", user.ID), slog.Any("businessID", input.BusinessID), slog.Any("actorID", actorID))

	return &usecase.RegisterOutput{User: user}, nil
}

// CreateStaffUser creates a platform staff account, for staff admins only.
func (srv *userService) CreateStaffUser(ctx context.Context, actorID uuid.UUID, input *usecase.CreateStaffUserInput) (*usecase.RegisterOutput, error) {
	if !input.AccessLevel.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid staff access level")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		profile := &entity.StaffUserProfile{
			ID:                uuid.New(),
			Status:            entity.ProfileStatusActive,
			AccessLevel:       input.AccessLevel,
			SystemPermissions: input.SystemPermissions,
		}

		if input.AccessLevel == entity.StaffLevelAdmin {
			if !srv.policies.StaffUserProfile.CreateAdmin(actor) {
				return errors.Wrap(domainerrors.ErrForbidden, "actor may not create admin staff")
			}
		} else if !srv.policies.StaffUserProfile.Create(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not create staff")
		}

		userRepo := repoFactory.NewUserRepository()
		if err := srv.ensureEmailFree(ctx, userRepo, input.Email); err != nil {
			return err
		}

		user = &entity.User{
			ID:          uuid.New(),
			Email:       input.Email,
			Name:        input.Name,
			Password:    hashed,
			Active:      true,
			ProfileKind: entity.ProfileKindStaff,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		profile.UserID = user.ID
		if err := repoFactory.NewStaffUserProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create staff profile")
		}

		user.StaffProfile = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute staff user creation")
	}

	srv.log(ctx).Info("Created staff user",
		slog.Any("userID", user.ID), slog.String("accessLevel", input.AccessLevel.String()), slog.Any("actorID", actorID))

	return &usecase.RegisterOutput{User: user}, nil
}

// GetUser retrieves a user the actor may view.
func (srv *userService) GetUser(ctx context.Context, actorID, targetID uuid.UUID) (*entity.User, error) {
	var target *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findTarget(ctx, repoFactory, targetID)
		if err != nil {
			return err
		}

		if !srv.policies.User.View(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this user")
		}

		target = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return target, nil
}

// ListUsers retrieves users matching the filter. Business actors are pinned
// to their own business regardless of the filter they pass.
func (srv *userService) ListUsers(ctx context.Context, actorID uuid.UUID, filter repository.UserFilter) ([]*entity.User, error) {
	var users []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.User.ViewAny(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not list users")
		}

		if !actor.IsStaff() {
			businessID := actor.BusinessID()
			if businessID == uuid.Nil {
				return errors.Wrap(domainerrors.ErrForbidden, "actor has no business scope")
			}

			filter.BusinessID = &businessID
		}

		users, err = repoFactory.NewUserRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser modifies a user the actor may update.
func (srv *userService) UpdateUser(ctx context.Context, actorID, targetID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		userRepo := repoFactory.NewUserRepository()

		target, err := srv.findTarget(ctx, repoFactory, targetID)
		if err != nil {
			return err
		}

		if !srv.policies.User.Update(actor, target) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not update this user")
		}

		if input.Email != nil && *input.Email != target.Email {
			if err := srv.ensureEmailFree(ctx, userRepo, *input.Email); err != nil {
				return err
			}
			target.Email = *input.Email
		}
		if input.Name != nil {
			target.Name = *input.Name
		}

		if err := userRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = target

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update")
	}

	return updated, nil
}

// DeactivateUser switches the target account off and revokes every refresh
// token the target holds, killing its live sessions.
func (srv *userService) DeactivateUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		target, err := srv.findTarget(ctx, repoFactory, targetID)
		if err != nil {
			return err
		}

		if !srv.policies.User.Update(actor, target) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not deactivate this user")
		}

		target.Active = false
		if err := repoFactory.NewUserRepository().Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to deactivate user")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		srv.log(ctx).Info("Deactivated user", slog.Any("userID", target.ID), slog.Any("actorID", actor.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deactivation")
	}

	srv.publishEvent(ctx, service.EventUserDeactivated, targetID, actorID)

	return nil
}

// publishEvent emits a domain event after a committed transition. Publish
// failures are logged and swallowed.
func (srv *userService) publishEvent(ctx context.Context, name string, targetID, actorID uuid.UUID) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		UserID:     actorID.String(),
		OccurredAt: time.Now(),
		Attributes: map[string]string{"target_user_id": targetID.String()},
	}
	if err := srv.eventPublisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish domain event", slog.String("event", name), slog.Any("error", err))
	}
}

// DeleteUser removes a user together with its sessions and profile rows.
func (srv *userService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		target, err := srv.findTarget(ctx, repoFactory, targetID)
		if err != nil {
			return err
		}

		if actor.ID == target.ID {
			return errors.Wrap(domainerrors.ErrSelfActionBlocked, "cannot delete own account")
		}
		if !srv.policies.User.Delete(actor, target) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not delete this user")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}
		if err := srv.deleteProfiles(ctx, repoFactory, target); err != nil {
			return err
		}
		if err := repoFactory.NewUserRepository().Delete(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		srv.log(ctx).Info("Deleted user", slog.Any("userID", target.ID), slog.Any("actorID", actor.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deletion")
	}

	return nil
}

// actorAdministers reports whether the actor holds an elevated membership
// in the given business.
func (srv *userService) actorAdministers(actor *entity.User, businessID uuid.UUID) bool {
	for _, m := range actor.ActiveMemberships() {
		if m != nil && m.BusinessID == businessID && m.IsElevated() {
			return true
		}
	}

	return false
}

func (srv *userService) ensureEmailFree(ctx context.Context, userRepo repository.UserRepository, email string) error {
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	return nil
}

func (srv *userService) findTarget(ctx context.Context, factory repository.RepositoryFactory, id uuid.UUID) (*entity.User, error) {
	target, err := factory.NewUserRepository().FindByIDWithMemberships(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "target lookup")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return target, nil
}

func (srv *userService) deleteProfiles(ctx context.Context, factory repository.RepositoryFactory, target *entity.User) error {
	if target.CustomerProfile != nil {
		if err := factory.NewCustomerProfileRepository().Delete(ctx, target.CustomerProfile.ID); err != nil {
			return errors.Wrap(err, "failed to delete customer profile")
		}
	}
	for _, m := range target.BusinessMemberships {
		if m == nil {
			continue
		}
		if err := factory.NewBusinessUserProfileRepository().Delete(ctx, m.ID); err != nil {
			return errors.Wrap(err, "failed to delete business membership")
		}
	}
	if target.BusinessMemberships == nil && target.BusinessProfile != nil {
		if err := factory.NewBusinessUserProfileRepository().Delete(ctx, target.BusinessProfile.ID); err != nil {
			return errors.Wrap(err, "failed to delete business membership")
		}
	}
	if target.StaffProfile != nil {
		if err := factory.NewStaffUserProfileRepository().Delete(ctx, target.StaffProfile.ID); err != nil {
			return errors.Wrap(err, "failed to delete staff profile")
		}
	}

	return nil
}
