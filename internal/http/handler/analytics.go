package handler

import (
	"github.com/gofiber/fiber/v2"

	"docvault/internal/http/middleware"
	"docvault/internal/service"
)

// UserStats returns the requester's usage aggregate: document totals,
// per-type breakdown, 30-day upload timeline and recent activity.
func UserStats(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		stats, err := svc.UserStats(c.UserContext(), identity)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// Recents returns the requester's latest activity entries.
func Recents(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		entries, err := svc.Recents(c.UserContext(), identity)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(entries)
	}
}
