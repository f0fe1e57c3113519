// Package usecase defines the application-facing interfaces and their
// input/output DTOs. Handlers bind requests into these inputs; services in
// impl/ carry the business rules.
package usecase

import "context"

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterOutput confirms a successful registration.
type RegisterOutput struct {
	Message string `json:"message"`
}

// LoginInput carries the login payload.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the sanitized user view returned by login and the profile
// endpoints. It never carries the password hash.
type UserProfile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginOutput carries the issued bearer token and the sanitized profile.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// AuthUsecase orchestrates registration and login.
type AuthUsecase interface {
	// Register runs the ordered validation pipeline: duplicate username,
	// duplicate email, optional password policy, hash, persist.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. Unknown
	// username and wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
