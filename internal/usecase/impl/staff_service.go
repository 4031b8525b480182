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

// staffService implements the StaffUsecase interface.
// The delete and demote paths read the active admin count with a locking
// query inside the same transaction as the write, so two concurrent
// demotions cannot both see a spare admin.
type staffService struct {
	txManager repository.TransactionManager
	policies  *authz.Policies
	logger    *slog.Logger
}

// StaffServiceParams holds dependencies for staffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Policies  *authz.Policies
	Logger    *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		txManager: params.TxManager,
		policies:  params.Policies,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStaff retrieves every staff profile, for staff admins.
func (srv *staffService) ListStaff(ctx context.Context, actorID uuid.UUID) ([]*entity.StaffUserProfile, error) {
	var profiles []*entity.StaffUserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.StaffUserProfile.ViewAny(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not list staff profiles")
		}

		profiles, err = repoFactory.NewStaffUserProfileRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list staff profiles")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return profiles, nil
}

// GetStaffProfile retrieves a staff profile the actor may view.
func (srv *staffService) GetStaffProfile(ctx context.Context, actorID, profileID uuid.UUID) (*entity.StaffUserProfile, error) {
	var profile *entity.StaffUserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findProfile(ctx, repoFactory, profileID)
		if err != nil {
			return err
		}

		if !srv.policies.StaffUserProfile.View(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this staff profile")
		}

		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get staff profile")
	}

	return profile, nil
}

// UpdateStaffProfile modifies a staff profile the actor may update.
func (srv *staffService) UpdateStaffProfile(ctx context.Context, actorID, profileID uuid.UUID, input *usecase.UpdateStaffProfileInput) (*entity.StaffUserProfile, error) {
	var updated *entity.StaffUserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		profile, err := srv.findProfile(ctx, repoFactory, profileID)
		if err != nil {
			return err
		}

		if !srv.policies.StaffUserProfile.Update(actor, profile) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not update this staff profile")
		}

		if input.Status != nil {
			if !input.Status.IsValid() {
				return errors.Wrap(domainerrors.ErrValidationFailed, "invalid profile status")
			}
			profile.Status = *input.Status
		}
		if input.SystemPermissions != nil {
			profile.SystemPermissions = input.SystemPermissions
		}

		if err := repoFactory.NewStaffUserProfileRepository().Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update staff profile")
		}

		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute staff profile update")
	}

	return updated, nil
}

// DeleteStaffProfile removes a staff profile under the self-action and
// last-admin guards.
func (srv *staffService) DeleteStaffProfile(ctx context.Context, actorID, profileID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		staffRepo := repoFactory.NewStaffUserProfileRepository()

		profile, err := srv.findProfile(ctx, repoFactory, profileID)
		if err != nil {
			return err
		}

		if actor.ID == profile.UserID {
			return errors.Wrap(domainerrors.ErrSelfActionBlocked, "cannot delete own staff profile")
		}

		activeAdmins, err := staffRepo.CountActiveAdminsForUpdate(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count active admins")
		}

		if !srv.policies.StaffUserProfile.Delete(actor, profile, activeAdmins) {
			if profile.IsAdmin() && activeAdmins <= 1 {
				return errors.Wrap(domainerrors.ErrLastAdminGuard, "cannot delete the last active admin")
			}

			return errors.Wrap(domainerrors.ErrForbidden, "actor may not delete this staff profile")
		}

		if err := staffRepo.Delete(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to delete staff profile")
		}

		srv.log(ctx).Info("Deleted staff profile", slog.Any("profileID", profile.ID), slog.Any("actorID", actor.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute staff profile deletion")
	}

	return nil
}

// PromoteToAdmin raises a staff profile to the admin level.
func (srv *staffService) PromoteToAdmin(ctx context.Context, actorID, profileID uuid.UUID) (*entity.StaffUserProfile, error) {
	var promoted *entity.StaffUserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		profile, err := srv.findProfile(ctx, repoFactory, profileID)
		if err != nil {
			return err
		}

		if !srv.policies.StaffUserProfile.PromoteToAdmin(actor, profile) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not promote this staff profile")
		}

		profile.AccessLevel = entity.StaffLevelAdmin
		if err := repoFactory.NewStaffUserProfileRepository().Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to promote staff profile")
		}

		promoted = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute staff promotion")
	}

	return promoted, nil
}

// DemoteFromAdmin lowers an admin profile to the advanced level under the
// self-action and last-admin guards.
func (srv *staffService) DemoteFromAdmin(ctx context.Context, actorID, profileID uuid.UUID) (*entity.StaffUserProfile, error) {
	var demoted *entity.StaffUserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		staffRepo := repoFactory.NewStaffUserProfileRepository()

		profile, err := srv.findProfile(ctx, repoFactory, profileID)
		if err != nil {
			return err
		}

		if actor.ID == profile.UserID {
			return errors.Wrap(domainerrors.ErrSelfActionBlocked, "cannot demote own admin status")
		}

		activeAdmins, err := staffRepo.CountActiveAdminsForUpdate(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count active admins")
		}

		if !srv.policies.StaffUserProfile.DemoteFromAdmin(actor, profile, activeAdmins) {
			if profile.IsAdmin() && activeAdmins <= 1 {
				return errors.Wrap(domainerrors.ErrLastAdminGuard, "cannot demote the last active admin")
			}

			return errors.Wrap(domainerrors.ErrForbidden, "actor may not demote this staff profile")
		}

		profile.AccessLevel = entity.StaffLevelAdvanced
		if err := staffRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to demote staff profile")
		}

		demoted = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute staff demotion")
	}

	return demoted, nil
}

func (srv *staffService) findProfile(ctx context.Context, factory repository.RepositoryFactory, id uuid.UUID) (*entity.StaffUserProfile, error) {
	profile, err := factory.NewStaffUserProfileRepository().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "staff profile lookup")
		}

		return nil, errors.Wrap(err, "failed to find staff profile")
	}

	return profile, nil
}
