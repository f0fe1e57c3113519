package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/config"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with a process-wide symmetric key; rotating the key
// invalidates everything previously issued.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret:   cfg.JWT.Secret,
		tokenTTL: ttl,
	}, nil
}

// Issue creates an HS512-signed token carrying the numeric user ID as the
// subject and the username as the "name" claim.
func (s *jwtService) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate parses the token and extracts the user identity from its claims.
func (s *jwtService) Validate(tokenString string) (uint, string, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", errors.Wrap(err, "invalid subject claim")
	}

	return uint(userID), claims.Username, nil
}
