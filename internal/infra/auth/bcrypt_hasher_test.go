package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 4 // keep the test fast

	hasher := NewBcryptHasher(cfg)

	record, err := hasher.Hash("S3cure!pass")
	require.NoError(t, err)

	assert.True(t, hasher.Check("S3cure!pass", record))
	assert.False(t, hasher.Check("wrong", record))
}

func TestNewHasher_Selection(t *testing.T) {
	cfg := &config.Config{}

	hasher, err := NewHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &hmacHasher{}, hasher)

	cfg.Auth.Hasher = "bcrypt"
	hasher, err = NewHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &bcryptHasher{}, hasher)

	cfg.Auth.Hasher = "argon2"
	_, err = NewHasher(cfg)
	assert.Error(t, err)
}
