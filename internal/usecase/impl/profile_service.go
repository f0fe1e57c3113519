package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's own profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uint) (*usecase.UserProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return toUserProfile(user), nil
}

// UpdateProfile applies a partial update to the caller's profile. The
// username is immutable; email changes are checked against other accounts.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) (*usecase.UserProfile, error) {
	// A nil input means no fields were provided; that is a valid no-op update.
	if input == nil {
		input = &usecase.UpdateProfileInput{}
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	if input.Email != nil && *input.Email != user.Email {
		inUse, err := srv.userRepo.EmailInUseByOther(ctx, *input.Email, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
		if inUse {
			return nil, domainerrors.ErrEmailInUse
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("Profile updated", slog.Uint64("userID", uint64(userID)))

	return toUserProfile(user), nil
}
