package routes

import (
	"Backend-FormFlow/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func adminRoutes(router fiber.Router, ac *controllers.AdminController, auth fiber.Handler, lim limiters) {
	admin := router.Group("/admin")

	admin.Post("/login", lim.api, ac.Login)
	admin.Post("/create", auth, ac.CreateAdmin)
}
