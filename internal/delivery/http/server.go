package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/placement-microservice/internal/config"
	"github.com/placement-microservice/internal/delivery/http/handler"
	"github.com/placement-microservice/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server for the facility directory API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	facilityHandler   *handler.FacilityHandler
	statsHandler      *handler.StatsHandler
	navigationHandler *handler.NavigationHandler
	inquiryHandler    *handler.InquiryHandler
}

// NewServer creates the HTTP server with all middlewares and routes set up.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	facilityHandler *handler.FacilityHandler,
	statsHandler *handler.StatsHandler,
	navigationHandler *handler.NavigationHandler,
	inquiryHandler *handler.InquiryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Placement Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		facilityHandler:   facilityHandler,
		statsHandler:      statsHandler,
		navigationHandler: navigationHandler,
		inquiryHandler:    inquiryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Facility routes
	api.Post("/facilities/search", s.facilityHandler.Search)
	api.Get("/facilities/options", s.facilityHandler.Options)
	api.Get("/facilities/:id", s.facilityHandler.GetByID)

	// Navigation routes
	api.Get("/navigation", s.navigationHandler.Current)
	api.Post("/navigation/select", s.navigationHandler.Select)
	api.Post("/navigation/back", s.navigationHandler.Back)

	// Inquiries
	api.Post("/inquiries", s.inquiryHandler.Submit)

	// Stats
	api.Get("/stats", s.statsHandler.GetStats)
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
