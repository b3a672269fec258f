package handler

import (
	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/model"
	"cmsapi/internal/service"
)

// StatsHandler serves the public counters and the admin counter config.
type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Basic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := h.svc.Basic(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

func (h *StatsHandler) Extended() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := h.svc.Extended(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

func (h *StatsHandler) GetConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := h.svc.Config(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cfg)
	}
}

func (h *StatsHandler) UpdateConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload model.Record
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		cfg, err := h.svc.UpdateConfig(c.UserContext(), payload)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cfg)
	}
}
