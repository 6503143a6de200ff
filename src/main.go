package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "Backend-FormFlow/docs"
	"Backend-FormFlow/src/config"
	"Backend-FormFlow/src/database"
	"Backend-FormFlow/src/jobs"
	"Backend-FormFlow/src/logger"
	"Backend-FormFlow/src/middleware"
	"Backend-FormFlow/src/routes"
	"Backend-FormFlow/src/seeder"
	"Backend-FormFlow/src/services/admins"
	"Backend-FormFlow/src/services/forms"
	"Backend-FormFlow/src/services/schema"
	"Backend-FormFlow/src/services/submission"
	"Backend-FormFlow/src/services/uploads"
	"Backend-FormFlow/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// @title                       FormFlow API
// @version                     1.0
// @description                 Dynamic form builder: admins author versioned forms, respondents submit validated answers.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("❌ invalid configuration: %v", err)
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Fatalf("❌ invalid log settings: %v", err)
	}
	utils.SetExposeErrorDetails(cfg.Server.IsDevelopment())
	if cfg.Auth.JWTSecret == "" {
		logger.Warn("⚠️ JWT_SECRET is not set. Admin authentication will not work until it is configured.")
	}

	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(cfg.Mongo); err != nil {
		logger.Fatalf("Error connecting to the database: %v", err)
	}
	if cfg.Mongo.Migrate {
		if err := database.MigrateDB(database.Client(), cfg.Mongo.Database); err != nil {
			logger.Fatalf("❌ migration failed: %v", err)
		}
	}

	// Redis เป็น optional: ถ้าเชื่อมไม่ได้ก็ทำงานต่อแบบไม่มี cache
	if err := database.InitRedis(cfg.Redis); err != nil {
		logger.Warnf("%v. Continuing without Redis.", err)
	}
	database.InitAsynq()

	uploadSvc, err := uploads.NewService(cfg.Uploads.Dir, cfg.Uploads.MaxFileSize)
	if err != nil {
		logger.Fatalf("❌ cannot prepare uploads directory: %v", err)
	}
	formSvc := forms.NewService(database.FormCollection, database.RedisClient, schema.Options{
		MaxDepth: cfg.Schema.MaxConditionalDepth,
	})
	submissionSvc := submission.NewService(
		database.SubmissionCollection,
		database.FormsCollectionName,
		formSvc,
		jobs.NewUploadDiscarder(database.AsynqClient, uploadSvc),
	)
	adminSvc := admins.NewService(database.AdminCollection, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := adminSvc.EnsureDefault(bootCtx, cfg.Auth.DefaultAdminUsername, cfg.Auth.DefaultAdminPassword); err != nil {
		logger.Errorf("❌ cannot create default admin: %v", err)
	}
	if cfg.Seed.SampleForms {
		if err := seeder.SeedSampleForms(bootCtx, formSvc, submissionSvc); err != nil {
			logger.Errorf("❌ seeding sample forms failed: %v", err)
		}
	}
	cancelBoot()

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	deps := routes.Deps{
		Config:      cfg,
		Forms:       formSvc,
		Submissions: submissionSvc,
		Uploads:     uploadSvc,
		Admins:      adminSvc,
		AdminFinder: adminSvc,
		Ping:        database.Ping,
	}
	if database.RedisClient != nil {
		deps.LimiterStorage = utils.NewRedisStorage(database.RedisClient, "limiter:")
	}
	routes.InitRoutes(app, deps)

	var worker *jobs.Worker
	if database.RedisClient != nil {
		worker, err = jobs.StartWorker(database.AsynqRedisOpt(), formSvc, uploadSvc, cfg.Retention.PurgeDeletedFormsAfter)
		if err != nil {
			logger.Errorf("❌ background worker not started: %v", err)
		}
	}

	go func() {
		logger.Infof("Server is running on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logger.Fatalf("❌ server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("🛑 Shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.CloseAsynq(); err != nil {
		logger.Errorf("asynq close: %v", err)
	}
	if err := database.CloseRedis(); err != nil {
		logger.Errorf("redis close: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.DisconnectMongoDB(ctx); err != nil {
		logger.Errorf("mongo disconnect: %v", err)
	}
}
