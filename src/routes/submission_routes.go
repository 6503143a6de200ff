package routes

import (
	"Backend-FormFlow/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func submissionRoutes(router fiber.Router, sc *controllers.SubmissionController, auth fiber.Handler, lim limiters) {
	submissions := router.Group("/submissions")

	submissions.Post("/", lim.submission, sc.SubmitForm)

	submissions.Get("/", auth, lim.api, sc.GetSubmissions)
	submissions.Get("/export", auth, lim.api, sc.ExportSubmissionsCSV) // ต้องอยู่ก่อน /:id
	submissions.Get("/:id", auth, lim.api, sc.GetSubmissionByID)
}
