package handlers

import (
	"github.com/gofiber/fiber/v3"

	"campusshare/internal/db"
)

// HealthHandler reports process liveness and database reachability.
type HealthHandler struct {
	db *db.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(database *db.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

// Healthz returns 200 when the database answers a ping.
func (h *HealthHandler) Healthz(c fiber.Ctx) error {
	if err := h.db.Pool.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
