// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm (salted HMAC-SHA512 or bcrypt),
// keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash record from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash record. The
	// comparison is constant-time with respect to the digest.
	Check(password, hashRecord string) bool
}

// PasswordPolicy validates plaintext passwords before hashing. It is an
// optional, pluggable check; a nil policy means any password is accepted.
type PasswordPolicy interface {
	// Validate returns a descriptive error when the password does not meet
	// the configured requirements.
	Validate(password string) error
}
