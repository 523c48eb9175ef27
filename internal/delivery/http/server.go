package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/mediplus/geosearch/internal/config"
	"github.com/mediplus/geosearch/internal/delivery/http/handler"
	"github.com/mediplus/geosearch/internal/delivery/http/middleware"
	"github.com/mediplus/geosearch/internal/pkg/errors"
	"github.com/mediplus/geosearch/internal/pkg/utils"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck - проверка зависимости для /health (Redis, PostgreSQL)
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	establishmentHandler *handler.EstablishmentHandler
	statsHandler         *handler.StatsHandler

	healthChecks []HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	establishmentHandler *handler.EstablishmentHandler,
	statsHandler *handler.StatsHandler,
	healthChecks ...HealthCheck,
) *Server {
	// Overpass отвечает до 30 секунд, WriteTimeout должен это покрывать
	writeTimeout := cfg.Overpass.RequestTimeout + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:      "MediPlus Geo-Search",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                  app,
		config:               cfg,
		logger:               logger,
		establishmentHandler: establishmentHandler,
		statsHandler:         statsHandler,
		healthChecks:         healthChecks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Establishment routes
	establishments := api.Group("/establishments")
	establishments.Get("/nearby", s.establishmentHandler.SearchNearby)
	establishments.Get("/search", s.establishmentHandler.SearchByName)
	establishments.Get("/:kind/:id", s.establishmentHandler.GetDetails)

	api.Get("/establishment-types", s.establishmentHandler.GetTypes)
	api.Post("/distance", s.establishmentHandler.CalculateDistance)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// health godoc
// @Summary Health check
// @Description Состояние сервиса и его зависимостей. Overpass не проверяется: его отказ не делает сервис недоступным.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	components := make(fiber.Map, len(s.healthChecks))

	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("component", hc.Name), zap.Error(err))
			components[hc.Name] = "unhealthy"
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
			continue
		}
		components[hc.Name] = "healthy"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":     status,
		"components": components,
		"time":       time.Now(),
	})
}

// App - доступ к fiber.App (используется в тестах через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок (404 маршрутов, паники, ошибки fiber)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			logger.Debug("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", fiberErr.Code),
				zap.Error(err),
			)
			return c.Status(fiberErr.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpErrorCode(fiberErr.Code), fiberErr.Message, fiberErr.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
