package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/config"
)

func strictPolicyConfig() *config.Config {
	cfg := &config.Config{}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		RejectWeakList:   true,
	}

	return cfg
}

func TestNewPasswordPolicy_NilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewPasswordPolicy(&config.Config{}))
}

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy(strictPolicyConfig())
	require.NotNil(t, policy)

	assert.NoError(t, policy.Validate("Str0ng!pass"))

	tests := []struct {
		name     string
		password string
	}{
		{name: "empty", password: ""},
		{name: "too short", password: "Ab1!"},
		{name: "no uppercase", password: "str0ng!pass"},
		{name: "no lowercase", password: "STR0NG!PASS"},
		{name: "no digit", password: "Strong!pass"},
		{name: "no symbol", password: "Str0ngpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, policy.Validate(tt.password))
		})
	}
}

func TestPasswordPolicy_WeakList(t *testing.T) {
	cfg := &config.Config{}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{RejectWeakList: true}

	policy := NewPasswordPolicy(cfg)
	require.NotNil(t, policy)

	assert.Error(t, policy.Validate("Password"), "weak-list match is case-insensitive")
	assert.NoError(t, policy.Validate("unlisted-password"))
}
