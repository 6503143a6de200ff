package routes

import (
	"Backend-FormFlow/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// formRoutes กำหนด route สำหรับ form management
func formRoutes(router fiber.Router, fc *controllers.FormController, auth fiber.Handler, lim limiters) {
	forms := router.Group("/forms")

	// public
	forms.Get("/", lim.api, fc.GetAllForms)
	forms.Get("/:id", lim.api, fc.GetFormByID)

	// admin
	forms.Post("/", auth, lim.api, fc.CreateForm)
	forms.Put("/:id", auth, lim.api, fc.UpdateForm)
	forms.Delete("/:id", auth, lim.api, fc.DeleteForm)
	forms.Post("/:id/restore", auth, lim.api, fc.RestoreForm)
}
