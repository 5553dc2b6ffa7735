package middleware

import (
	"net/http"
	"slices"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var (
	errInvalidTokenFormat = errors.New("Invalid token format, must be Bearer token")
	errInvalidToken       = errors.New("Invalid or expired token")
	errInvalidClaims      = errors.New("Failed to parse token claims")
	errMissingUserID      = errors.New("Invalid or missing user ID in token")
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		if err := m.applyClaims(c, authHeader); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		return next(c)
	}
}

// OptionalAuthenticate validates the token when one is supplied but lets
// anonymous requests through. Cart routes use it: a signed-in user gets a
// persistent cart, everyone else works off the session header.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		if err := m.applyClaims(c, authHeader); err != nil {
			// A present-but-bad token is rejected rather than silently
			// downgraded to a guest.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		return next(c)
	}
}

// applyClaims validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) applyClaims(c echo.Context, authHeader string) error {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return errInvalidTokenFormat
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errInvalidClaims
	}

	// Extract user ID
	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return errMissingUserID
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return errMissingUserID
	}

	// Extract roles
	rolesClaim, _ := claims["roles"].([]any)
	var roles []string
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	// Set user info on the context for handlers to use
	c.Set("userID", userID)
	c.Set("roles", roles)
	if email, ok := claims["email"].(string); ok {
		c.Set("userEmail", email)
	}

	return nil
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get("roles")
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user id placed on the context by
// Authenticate. The second return is false for anonymous requests.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// GetUserEmail returns the email claim of the authenticated user, if any.
func GetUserEmail(c echo.Context) string {
	email, _ := c.Get("userEmail").(string)

	return email
}

// GetCartOwner resolves the cart owner for the request: the authenticated
// user when a token was presented, otherwise the anonymous session from the
// X-Session-Id header. Returns false when neither identity is available.
func GetCartOwner(c echo.Context) (entity.CartOwner, bool) {
	if userID, ok := GetUserID(c); ok {
		return entity.AuthenticatedOwner(userID), true
	}

	sessionID := c.Request().Header.Get(deliverycontext.HeaderXSessionID)
	if sessionID == "" {
		return entity.CartOwner{}, false
	}

	return entity.GuestOwner(sessionID), true
}
