package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/config"
	"taskhub/internal/domain/service"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TokenTTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	token, err := svc.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "alice", username)
}

func TestJWTService_ClaimsAndExpiry(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 24*time.Hour)

	token, err := svc.Issue(7, "bob")
	require.NoError(t, err)

	claims := &service.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, jwt.SigningMethodHS512.Alg(), parsed.Method.Alg())

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	issuer := newTestTokenService(t, "key-one", time.Hour)
	verifier := newTestTokenService(t, "key-two", time.Hour)

	token, err := issuer.Issue(1, "carol")
	require.NoError(t, err)

	_, _, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	_, _, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
