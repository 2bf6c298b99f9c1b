package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"trafficportal/pkg/apperr"
)

// fail maps service errors onto the HTTP taxonomy: validation 400,
// bad credentials 401, everything else a generic 500. Storage detail
// stays in the server log.
func fail(c *fiber.Ctx, err error) error {
	var br *apperr.BadRequest
	switch {
	case errors.As(err, &br):
		return c.Status(400).JSON(fiber.Map{"detail": br.Msg})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"detail": "Invalid username or password"})
	default:
		log.Println("[HTTP] internal error:", err)
		return c.Status(500).JSON(fiber.Map{"detail": "Database error"})
	}
}
