package middleware

import (
	"strings"

	"github.com/ir-khan/inventory-management-system/internal/delivery/http/response"
	"github.com/ir-khan/inventory-management-system/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeySession is the echo context key the verified session is stored
// under.
const ContextKeySession = "session"

// AuthMiddleware verifies the Firebase ID token on incoming requests.
type AuthMiddleware struct {
	authSvc service.AuthService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authSvc service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// Authenticate validates the bearer ID token and stores the resulting
// session on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		session, err := m.authSvc.VerifySession(c.Request().Context(), idToken)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeySession, session)

		return next(c)
	}
}

// SessionFromContext returns the session placed by Authenticate, or nil when
// the route was reached without it.
func SessionFromContext(c echo.Context) *service.Session {
	session, ok := c.Get(ContextKeySession).(*service.Session)
	if !ok {
		return nil
	}

	return session
}
