package auth

import (
	"taskhub/config"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// NewHasher selects the configured PasswordHasher implementation.
// The HMAC record format is the default.
func NewHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.Hasher {
	case "", "hmac":
		return NewHMACHasher(), nil
	case "bcrypt":
		return NewBcryptHasher(cfg), nil
	default:
		return nil, errors.Errorf("unknown password hasher: %s", cfg.Auth.Hasher)
	}
}
