package routes

import (
	"context"

	"Backend-FormFlow/src/config"
	"Backend-FormFlow/src/controllers"
	"Backend-FormFlow/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Deps are the services the HTTP routes are built from.
type Deps struct {
	Config      *config.Config
	Forms       controllers.FormService
	Submissions controllers.SubmissionService
	Uploads     controllers.UploadStore
	Admins      controllers.AdminService
	AdminFinder middleware.AdminFinder
	// LimiterStorage shares rate limit counters; nil keeps them in memory.
	LimiterStorage fiber.Storage
	Ping           func(ctx context.Context) error
}

type limiters struct {
	api        fiber.Handler
	submission fiber.Handler
}

// InitRoutes ลงทะเบียน route ทั้งหมดภายใต้ /api
func InitRoutes(app *fiber.App, deps Deps) {
	rl := deps.Config.RateLimit
	lim := limiters{
		api:        middleware.RateLimit("api", rl.APIMax, rl.APIWindow, deps.LimiterStorage, "Too many requests from this IP, please try again later."),
		submission: middleware.RateLimit("submission", rl.SubmissionMax, rl.SubmissionWindow, deps.LimiterStorage, "Too many submissions from this IP, please try again later."),
	}
	auth := middleware.AuthJWT(deps.Config.Auth.JWTSecret, deps.AdminFinder)

	api := app.Group("/api")
	api.Get("/health", controllers.HealthCheck(deps.Ping))

	adminRoutes(api, controllers.NewAdminController(deps.Admins), auth, lim)
	formRoutes(api, controllers.NewFormController(deps.Forms), auth, lim)
	submissionRoutes(api, controllers.NewSubmissionController(deps.Submissions, deps.Uploads), auth, lim)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
