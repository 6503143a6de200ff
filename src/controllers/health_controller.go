package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			ctx, cancel := requestContext(c)
			defer cancel()
			if err := ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "error",
					"message": "Database unavailable",
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "message": "Dynamic Form Builder API is running"})
	}
}
