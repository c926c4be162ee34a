package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-cms/internal/observability"
)

// StatsHandler exposes the in-process request counters to admins.
type StatsHandler struct {
	metrics *observability.Metrics
}

// NewStatsHandler constructs handler.
func NewStatsHandler(metrics *observability.Metrics) *StatsHandler {
	return &StatsHandler{metrics: metrics}
}

// Get handles GET /admin/stats.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.metrics.Snapshot(),
	})
}
