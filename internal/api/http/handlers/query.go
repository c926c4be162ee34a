package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// parsePageLimit reads the standard page/limit query parameters.
func parsePageLimit(c *fiber.Ctx) (page, limit, offset int) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	limit = defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, (page - 1) * limit
}

// searchTerm returns the search query parameter, or nil when absent.
func searchTerm(c *fiber.Ctx) *string {
	if raw := c.Query("search"); raw != "" {
		return &raw
	}
	return nil
}
