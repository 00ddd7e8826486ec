package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Abraxas-365/folio/pkg/auth"
	"github.com/Abraxas-365/folio/pkg/httpx"
	"github.com/Abraxas-365/folio/pkg/logx"
	"github.com/Abraxas-365/folio/portfolio/contact/contactapi"
	"github.com/Abraxas-365/folio/portfolio/cv/cvapi"
	"github.com/Abraxas-365/folio/portfolio/project/projectapi"
	"github.com/Abraxas-365/folio/portfolio/record/recordapi"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting Folio API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer(context.Background())
	defer container.Firestore.Close()
	defer container.DB.Close()
	if container.Redis != nil {
		defer container.Redis.Close()
	}

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Folio Portfolio API",
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis != nil && container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes

	// Auth: /api/auth/login
	auth.RegisterRoutes(app, container.AuthHandlers)

	// Records: /api/experience, /api/education
	recordapi.RegisterRoutes(app, container.RecordHandlers)

	// Projects: /api/projects
	projectapi.RegisterRoutes(app, container.ProjectHandlers)

	// CV: /api/cv
	cvapi.RegisterRoutes(app, container.CVHandlers)

	// Contact: /api/contact (admin listing behind JWT)
	adminAuth := auth.Middleware(container.TokenService)
	contactapi.RegisterRoutes(app, container.ContactHandlers, adminAuth)

	// 7. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Run server in a goroutine
	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}
