package usecase

import "context"

// UpdateProfileInput is a partial profile update; nil fields stay unchanged.
type UpdateProfileInput struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ProfileUsecase serves the authenticated user's own profile.
type ProfileUsecase interface {
	// GetProfile returns the caller's sanitized profile.
	GetProfile(ctx context.Context, userID uint) (*UserProfile, error)

	// UpdateProfile applies a partial update; changing the email to one
	// already used by another user fails.
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*UserProfile, error)
}
