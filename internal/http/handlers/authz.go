package handlers

import (
	"strings"

	applog "nordhem/internal/log"
	"nordhem/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the Authorization bearer token and attaches the user
// to the request context. Missing and invalid tokens are both rejected with
// generic messages.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			applog.Security(c, "auth.token.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing or invalid authorization header"})
		}
		u, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			applog.Security(c, "auth.token.reject", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Invalid or expired token"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
