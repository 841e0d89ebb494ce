package app

import (
	"time"

	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
)

// Options configures the HTTP application.
type Options struct {
	Products    repositories.ProductRepository
	Users       repositories.UserRepository
	Events      services.EventPublisher // nil disables product events
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins string
	Logger      zerolog.Logger
}

// New wires services and handlers into a Fiber app.
func New(opts Options) *fiber.App {
	logger := opts.Logger
	validate := validation.New()

	productService := services.NewProductService(opts.Products, validate, opts.Events, logger)
	authService := services.NewAuthService(opts.Users, validate, opts.JWTSecret, opts.TokenTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:               "catalog",
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler(logger),
	})

	// --- Middleware ---
	app.Use(middleware.Logging(logger))
	app.Use(middleware.Recovery(logger))
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	// --- Health Check Endpoint ---
	handlers.NewHealthHandler().RegisterRoutes(app)

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(apiV1)

	handlers.NewProductHandler(productService, logger).
		RegisterRoutes(apiV1, middleware.AuthRequired(authService, logger))

	return app
}
