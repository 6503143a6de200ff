package middleware

import (
	"time"

	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit limits requests per client IP. storage may be nil for the
// in-memory store; pass a utils.RedisStorage to share counters between instances.
// Counters are keyed "<name>:<ip>", so limiters sharing one storage stay independent.
func RateLimit(name string, max int, window time.Duration, storage fiber.Storage, message string) fiber.Handler {
	cfg := limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return name + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.HandleError(c, fiber.StatusTooManyRequests, message)
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return limiter.New(cfg)
}
