package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trafficportal/pkg/models"
	"trafficportal/pkg/services"
)

type TrafficHandler struct {
	traffic services.TrafficService
}

func NewTraffic(traffic services.TrafficService) *TrafficHandler {
	return &TrafficHandler{traffic: traffic}
}

// POST /traffic/summary
func (h *TrafficHandler) Summary(c *fiber.Ctx) error {
	var req models.TrafficRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	resp, err := h.traffic.Summary(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// POST /traffic/location-wanip-summary
func (h *TrafficHandler) LocationSummary(c *fiber.Ctx) error {
	var req models.LocationSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	resp, err := h.traffic.LocationSummary(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// POST /user/activity-history
func (h *TrafficHandler) ActivityHistory(c *fiber.Ctx) error {
	var req models.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	resp, err := h.traffic.ActivityHistory(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
