package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/admins"
	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthJWT.
const (
	LocalAdminID  = "adminId"
	LocalUsername = "username"
)

// AdminFinder loads the admin a token was issued to.
type AdminFinder interface {
	FindByID(ctx context.Context, id string) (*models.AdminUser, error)
}

// AuthJWT accepts "Authorization: Bearer <token>" issued to an admin that still exists.
func AuthJWT(secret string, finder AdminFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Server configuration error")
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.HandleError(c, fiber.StatusUnauthorized, "No token provided, authorization denied")
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Token is not valid")
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		admin, err := finder.FindByID(ctx, claims.AdminID)
		if err != nil {
			if errors.Is(err, admins.ErrNotFound) {
				return utils.HandleError(c, fiber.StatusUnauthorized, "Token is not valid")
			}
			return utils.HandleInternalError(c, "Authentication error", err)
		}

		c.Locals(LocalAdminID, admin.ID.Hex())
		c.Locals(LocalUsername, admin.Username)
		return c.Next()
	}
}
