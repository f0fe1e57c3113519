package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/mocks"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.AuthUsecase)
	h := NewAuthHandler(uc, testLogger())

	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Username == "alice" && input.Email == "alice@example.com"
	})).Return(&usecase.RegisterOutput{Message: "Registration successful"}, nil)

	body := `{"username":"alice","email":"alice@example.com","password":"S3cure!pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serve(e, c, h.Register)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration successful")
}

func TestAuthHandler_Register_DuplicateUsernameIs400(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.AuthUsecase)
	h := NewAuthHandler(uc, testLogger())

	uc.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	body := `{"username":"alice","email":"alice@example.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serve(e, c, h.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
}

func TestAuthHandler_Register_MissingEmailFailsValidation(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.AuthUsecase)
	h := NewAuthHandler(uc, testLogger())

	body := `{"username":"alice","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serve(e, c, h.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.AuthUsecase)
	h := NewAuthHandler(uc, testLogger())

	uc.On("Login", mock.Anything, mock.Anything).Return(&usecase.LoginOutput{
		Token: "signed.jwt.token",
		User:  &usecase.UserProfile{ID: 7, Username: "alice"},
	}, nil)

	body := `{"username":"alice","password":"S3cure!pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serve(e, c, h.Login)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "signed.jwt.token", envelope.Data.Token)
	assert.Equal(t, "alice", envelope.Data.User.Username)
}

func TestAuthHandler_Login_BadCredentialsIs401(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.AuthUsecase)
	h := NewAuthHandler(uc, testLogger())

	uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"username":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	serve(e, c, h.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}
