package auth

import (
	"golang.org/x/crypto/bcrypt"

	"taskhub/config"
	"taskhub/internal/domain/service"
)

// bcryptHasher is an alternative PasswordHasher backed by bcrypt, selected
// with auth.hasher: bcrypt. bcrypt embeds its own salt in the record.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hashRecord string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashRecord), []byte(password)) == nil
}
