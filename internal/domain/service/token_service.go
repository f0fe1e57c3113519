package service

import "github.com/golang-jwt/jwt/v5"

// Claims are the custom claims carried in issued bearer tokens. The user's
// numeric ID travels as the registered "sub" claim (stringified) and the
// username as "name".
type Claims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the stateless bearer tokens that carry
// user identity between requests.
type TokenService interface {
	// Issue creates a signed token for the given user, expiring after the
	// configured TTL.
	Issue(userID uint, username string) (string, error)

	// Validate parses a token string and returns the numeric user ID and
	// username when the signature and expiry check out.
	Validate(tokenString string) (userID uint, username string, err error)
}
