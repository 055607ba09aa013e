package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/filehaven/filehaven/internal/config"
	"github.com/filehaven/filehaven/internal/domain"
	"github.com/filehaven/filehaven/internal/handler"
	"github.com/filehaven/filehaven/internal/middleware"
	"github.com/filehaven/filehaven/internal/service"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config   *config.Config
	Users    domain.UserRepository
	Files    domain.FileRepository
	Blobs    domain.BlobStore
	Sessions domain.SessionStore

	// RedisClient backs the idempotency middleware; nil disables it
	RedisClient *redis.Client

	MongoPing handler.Pinger
	RedisPing handler.Pinger
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize services
	authService := service.NewAuthService(deps.Users, deps.Sessions)
	fileService := service.NewFileService(deps.Files, deps.Blobs)

	// Initialize handlers
	appHandler := handler.NewAppHandler(deps.Users, deps.Files, deps.MongoPing, deps.RedisPing)
	userHandler := handler.NewUserHandler(authService)
	authHandler := handler.NewAuthHandler(authService)
	fileHandler := handler.NewFileHandler(fileService, deps.Sessions)

	app := fiber.New(fiber.Config{
		AppName:      "FileHaven API",
		BodyLimit:    int(deps.Config.Server.MaxUploadSizeMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Token, X-Correlation-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	sessionAuth := middleware.SessionAuth(deps.Sessions)

	// App state
	app.Get("/status", appHandler.Status)
	app.Get("/stats", appHandler.Stats)

	// Users
	app.Post("/users", userHandler.Register)
	app.Get("/users/me", sessionAuth, userHandler.Me)

	// Sessions
	app.Get("/connect", authHandler.Connect)
	app.Get("/disconnect", sessionAuth, authHandler.Disconnect)

	// Files
	upload := []fiber.Handler{sessionAuth}
	if deps.RedisClient != nil {
		upload = append(upload, middleware.IdempotencyMiddleware(deps.RedisClient, 10*time.Minute))
	}
	app.Post("/files", append(upload, fileHandler.Upload)...)
	app.Get("/files", sessionAuth, fileHandler.GetIndex)
	app.Get("/files/:id", sessionAuth, fileHandler.GetShow)
	// Content access handles its own (optional) session
	app.Get("/files/:id/data", fileHandler.GetData)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
