package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/access"
)

// IdentityLocalKey is the key used to store the authenticated identity in
// Fiber's context locals.
const IdentityLocalKey = "identity"

// TokenValidator verifies a bearer token and returns the identity it encodes.
type TokenValidator interface {
	ValidateToken(token string) (access.Identity, error)
}

// RequireAuth extracts and validates the Authorization bearer token. On
// success the identity is stored in locals under IdentityLocalKey; otherwise
// the request is rejected with 401 before reaching the handler.
func RequireAuth(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization header must be a bearer token")
		}

		identity, err := validator.ValidateToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(IdentityLocalKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by RequireAuth. The second
// return is false on routes that skipped the middleware.
func IdentityFromCtx(c *fiber.Ctx) (access.Identity, bool) {
	id, ok := c.Locals(IdentityLocalKey).(access.Identity)
	return id, ok
}
