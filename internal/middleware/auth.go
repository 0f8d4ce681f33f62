package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/auth"
	"github.com/careerguide/careerguide-api/internal/types"
)

// ClaimsKey is the fiber locals key the verified token claims are stored
// under for downstream handlers.
const ClaimsKey = "claims"

// AuthUser validates that the request carries a valid end-user token.
func AuthUser(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, tm, auth.UserTypeUser, nil, "auth.user")
	}
}

// AuthAdmin validates that the request carries a valid admin token of any
// admin role.
func AuthAdmin(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, tm, auth.UserTypeAdmin, nil, "auth.admin")
	}
}

// AuthSuperAdmin validates that the request carries a valid super_admin
// token.
func AuthSuperAdmin(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, tm, auth.UserTypeAdmin, []string{"super_admin"}, "auth.super_admin")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, tm *auth.TokenManager, userType string, roles []string, errorType string) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Missing or invalid authorization header",
			Type:    errorType,
		}
	}

	claims := tm.Verify(token)
	if claims == nil || claims.UserType != userType {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid or expired token",
			Type:    errorType,
		}
	}

	if len(roles) > 0 {
		allowed := false
		for _, role := range roles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Insufficient permissions",
				Type:    errorType,
			}
		}
	}

	c.Locals(ClaimsKey, claims)
	return c.Next()
}

// ClaimsFrom returns the verified claims stored by the auth middleware, or
// nil when the route is unauthenticated.
func ClaimsFrom(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsKey).(*auth.Claims)
	return claims
}
