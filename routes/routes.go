package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lizet96/financial-data-backend/config"
	"github.com/lizet96/financial-data-backend/handlers"
	"github.com/lizet96/financial-data-backend/middleware"
)

// Dependencies agrupa lo que necesitan las rutas
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Service  handlers.ReportService
	LogStore middleware.LogStore // nil desactiva el log de peticiones en base de datos
}

// NewApp crea la instancia de Fiber con su manejador de errores y todas las rutas
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(deps.Logger),
		AppName:      deps.Config.Server.AppName + " v" + deps.Config.Server.Version,
	})
	SetupRoutes(app, deps)
	return app
}

// SetupRoutes configura todas las rutas de la aplicación
func SetupRoutes(app *fiber.App, deps Dependencies) {
	cfg := deps.Config

	// Middleware global
	app.Use(logger.New())
	app.Use(recover.New())
	if deps.LogStore != nil {
		app.Use(middleware.LoggingMiddleware(deps.LogStore, cfg.Server.Environment, deps.Logger))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigin,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		// sin AllowHeaders se reflejan los headers pedidos en el preflight
		AllowCredentials: true,
	}))
	app.Use(middleware.SecurityHeaders())

	// Ruta de salud del sistema
	app.Get("/health", handlers.Health(cfg.Server.AppName, cfg.Server.Version))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	reports := handlers.NewReportHandler(deps.Service, deps.Logger)
	app.Get("/fetch_data", middleware.CreateRateLimiter(middleware.RateLimitConfig{
		Max:        cfg.RateLimit.Max,
		Expiration: cfg.RateLimit.Expiration,
	}), reports.FetchData)

	app.Use(handlers.NotFound)
}
