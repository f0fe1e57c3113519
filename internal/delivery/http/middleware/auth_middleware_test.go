package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, authHeader string, tokens *mocks.TokenService) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	mw := NewAuthMiddleware(tokens)
	require.NoError(t, mw.Authenticate(next)(c))

	return rec, c, reached
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := new(mocks.TokenService)

	rec, _, reached := runAuth(t, "", tokens)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	tokens := new(mocks.TokenService)

	rec, _, reached := runAuth(t, "Basic dXNlcjpwYXNz", tokens)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := new(mocks.TokenService)
	tokens.On("Validate", "garbage").Return(uint(0), "", errors.New("token is malformed"))

	rec, _, reached := runAuth(t, "Bearer garbage", tokens)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	tokens := new(mocks.TokenService)
	tokens.On("Validate", "good.token").Return(uint(7), "alice", nil)

	rec, c, reached := runAuth(t, "Bearer good.token", tokens)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)

	userID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "alice", c.Get(KeyUsername))
}
