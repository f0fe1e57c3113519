package mocks

import (
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hashRecord string) bool {
	return m.Called(password, hashRecord).Bool(0)
}

// PasswordPolicy is a mock of service.PasswordPolicy.
type PasswordPolicy struct {
	mock.Mock
}

func (m *PasswordPolicy) Validate(password string) error {
	return m.Called(password).Error(0)
}

// TokenService is a mock of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(userID uint, username string) (string, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Validate(tokenString string) (uint, string, error) {
	args := m.Called(tokenString)

	userID, _ := args.Get(0).(uint)

	return userID, args.String(1), args.Error(2)
}
