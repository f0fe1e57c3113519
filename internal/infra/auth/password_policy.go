package auth

import (
	"strings"
	"unicode"

	"taskhub/config"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// weakPasswords are rejected outright when the weak-list check is enabled.
var weakPasswords = []string{
	"123456", "password", "admin", "qwerty", "abc123", "letmein", "000000",
}

// passwordPolicy enforces the configured strength requirements. It is only
// constructed when a passwordStrength section is present in config.
type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy builds a PasswordPolicy from config, or nil when no
// policy is configured. A nil policy accepts every password.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	if cfg.PasswordStrength == nil {
		return nil
	}

	return &passwordPolicy{cfg: *cfg.PasswordStrength}
}

// Validate checks length, character classes, and the weak-password list.
func (p *passwordPolicy) Validate(password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password must not be empty")
	}

	if p.cfg.MinLength > 0 && len(password) < p.cfg.MinLength {
		return errors.Errorf("password must be at least %d characters", p.cfg.MinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if p.cfg.RequireUppercase && !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if p.cfg.RequireLowercase && !hasLower {
		return errors.New("password must contain a lowercase letter")
	}
	if p.cfg.RequireNumbers && !hasDigit {
		return errors.New("password must contain a digit")
	}
	if p.cfg.RequireSpecial && !hasSymbol {
		return errors.New("password must contain a symbol")
	}

	if p.cfg.RejectWeakList {
		lowered := strings.ToLower(password)
		for _, weak := range weakPasswords {
			if lowered == weak {
				return errors.New("password is on the weak-password list")
			}
		}
	}

	return nil
}
