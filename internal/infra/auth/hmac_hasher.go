// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// saltLength matches the HMAC-SHA512 block size, so a fresh salt is a full
// strength key for the keyed hash.
const saltLength = sha512.BlockSize

// recordSeparator joins the two base64 segments; ':' is not in the base64
// alphabet, so the record decodes unambiguously.
const recordSeparator = ":"

// hmacHasher implements PasswordHasher as a salted HMAC-SHA512 digest.
// The stored record is base64(salt) + ":" + base64(digest).
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{}
}

// Hash generates a fresh random salt, keys HMAC-SHA512 with it, and encodes
// salt and digest as a recoverable text record.
func (h *hmacHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := computeDigest(salt, password)

	return base64.StdEncoding.EncodeToString(salt) +
		recordSeparator +
		base64.StdEncoding.EncodeToString(digest), nil
}

// Check decodes the record, recomputes the keyed hash with the stored salt,
// and compares digests in constant time. A malformed record never matches.
func (h *hmacHasher) Check(password, hashRecord string) bool {
	salt, stored, ok := decodeRecord(hashRecord)
	if !ok {
		return false
	}

	computed := computeDigest(salt, password)

	return subtle.ConstantTimeCompare(computed, stored) == 1
}

func computeDigest(salt []byte, password string) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}

func decodeRecord(hashRecord string) (salt, digest []byte, ok bool) {
	parts := strings.Split(hashRecord, recordSeparator)
	if len(parts) != 2 {
		return nil, nil, false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, false
	}

	digest, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, false
	}

	return salt, digest, true
}
