package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/auth"
)

const (
	// AdminUserLocalKey is the context locals key holding the verified admin
	// username.
	AdminUserLocalKey = "admin_user"
	// AdminTokenLocalKey is the context locals key holding the raw bearer
	// token, for handlers that need it (logout bookkeeping).
	AdminTokenLocalKey = "admin_token"
)

// RequireAdmin gates a route group behind bearer-token verification. The
// check is purely cryptographic; the session set is not consulted, so a
// logged-out token keeps working until expiry.
func RequireAdmin(verifier auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		username, err := verifier.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(AdminUserLocalKey, username)
		c.Locals(AdminTokenLocalKey, token)
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
