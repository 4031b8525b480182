package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"plaza/internal/domain/service"
	mockservice "plaza/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_SetsActorContext(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{
		UserID:    userID,
		Roles:     []string{"customer"},
		Abilities: []string{"profile:read"},
		Type:      "access",
	}

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "valid-token").Return(claims, nil)

	mw := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer valid-token")

	err := mw.Authenticate(func(c echo.Context) error {
		gotID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.Equal(t, []string{"customer"}, roles)

		abilities, ok := GetAbilities(c)
		require.True(t, ok)
		assert.Equal(t, []string{"profile:read"}, abilities)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	c, rec := newAuthContext("")

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	c, rec := newAuthContext("Basic dXNlcjpwYXNz")

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("token is malformed"))

	mw := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer bad-token")

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RejectsRefreshToken(t *testing.T) {
	claims := &service.Claims{
		UserID: uuid.New(),
		Type:   "refresh",
	}

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "refresh-token").Return(claims, nil)

	mw := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer refresh-token")

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	tests := []struct {
		name     string
		roles    any
		required []string
		wantCode int
	}{
		{
			name:     "role present",
			roles:    []string{"staff_admin"},
			required: []string{"staff_admin"},
			wantCode: http.StatusOK,
		},
		{
			name:     "any of several",
			roles:    []string{"staff_basic"},
			required: []string{"staff_basic", "staff_advanced", "staff_admin"},
			wantCode: http.StatusOK,
		},
		{
			name:     "role missing",
			roles:    []string{"customer"},
			required: []string{"staff_admin"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "roles not set",
			roles:    nil,
			required: []string{"staff_admin"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			if tt.roles != nil {
				c.Set(ContextKeyRoles, tt.roles)
			}

			err := mw.RequireRole(tt.required...)(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireAbility(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	c, rec := newAuthContext("")
	c.Set(ContextKeyAbilities, []string{"business:manage"})

	err := mw.RequireAbility("business:manage")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newAuthContext("")
	c.Set(ContextKeyAbilities, []string{"profile:read"})

	err = mw.RequireAbility("business:manage")(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
