package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"trafficportal/pkg/security"
)

// Auth rejects requests without a valid bearer token and stores the
// parsed claims in Locals for the handler.
func Auth(tokens *security.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(401).JSON(fiber.Map{"detail": "Not authenticated"})
		}

		claims, err := tokens.Parse(auth[7:])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"detail": "Invalid or expired token"})
		}

		c.Locals("claims", claims)
		c.Locals("username", claims.Subject)
		c.Locals("user_id", claims.UserID)
		c.Locals("session_id", claims.SessionID)

		return c.Next()
	}
}

// OriginIP is the caller's network address, preferring the first entry
// of X-Forwarded-For over the raw connection peer.
func OriginIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return c.IP()
}
