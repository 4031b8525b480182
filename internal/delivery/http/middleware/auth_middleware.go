package middleware

import (
	"net/http"
	"slices"
	"strings"

	"plaza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID    = "userID"
	ContextKeyRoles     = "roles"
	ContextKeyAbilities = "abilities"
)

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles carried by the access token.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(ContextKeyRoles).([]string)

	return roles, ok
}

// GetAbilities returns the abilities carried by the access token.
func GetAbilities(c echo.Context) ([]string, bool) {
	abilities, ok := c.Get(ContextKeyAbilities).([]string)

	return abilities, ok
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Refresh tokens only ever reach the dedicated refresh endpoint
		if claims.Type != "access" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token is not an access token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, claims.Roles)
		c.Set(ContextKeyAbilities, claims.Abilities)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has at least one
// of the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			for _, required := range requiredRoles {
				if slices.Contains(roles, required) {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require one of " + strings.Join(requiredRoles, ", ")})
		}
	}
}

// RequireAbility is a middleware factory that checks if the token carries a
// specific ability, such as "business:manage". It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAbility(requiredAbility string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			abilitiesVal := c.Get(ContextKeyAbilities)
			abilities, ok := abilitiesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: ability information missing"})
			}

			if !slices.Contains(abilities, requiredAbility) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredAbility + "' ability"})
			}

			return next(c)
		}
	}
}
