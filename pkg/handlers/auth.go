package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trafficportal/pkg/middleware"
	"trafficportal/pkg/models"
	"trafficportal/pkg/security"
	"trafficportal/pkg/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuth(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// GET /
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Data Traffic API", "version": "1.0"})
}

// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	if err := h.auth.Register(req); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "User registered successfully"})
}

// POST /login — form-encoded username/password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"detail": "username and password are required"})
	}

	resp, err := h.auth.Login(req.Username, req.Password, middleware.OriginIP(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

// POST /logout — requires a valid token; the close itself is
// best-effort and the acknowledgment is unconditional.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, _ := c.Locals("claims").(*security.Claims)
	h.auth.Logout(claims)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}
