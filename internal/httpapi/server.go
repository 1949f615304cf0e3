// Package httpapi serves the read-only HTTP ops surface: health and
// store statistics. Ingestion and query go through the gRPC service.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/models"
	"github.com/metrondb/metrond/internal/storage"
)

// Version is the reported service version, injected at build time.
var Version = "dev"

// Server is the HTTP ops server
type Server struct {
	app    *fiber.App
	store  *storage.Engine
	logger *logging.Logger
}

// NewServer creates the ops server over the shared storage engine
func NewServer(store *storage.Engine, logger *logging.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		app:    app,
		store:  store,
		logger: logger,
	}

	app.Use(recover.New())
	app.Use(logging.FiberMiddleware(logger))

	app.Get("/health", s.Health)
	app.Get("/stats", s.Stats)
	app.Use(s.NotFound)

	return s
}

// Listen serves on addr until Shutdown is called
func (s *Server) Listen(addr string) error {
	s.logger.Info("HTTP ops server starting", "address", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// Health handles health check requests
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
	})
}

// Stats reports stored point counts and database size
func (s *Server) Stats(c *fiber.Ctx) error {
	stats, err := s.store.Stats(c.UserContext())
	if err != nil {
		s.logger.Error("Stats query failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORAGE_ERROR",
				Message: "failed to read storage statistics",
			},
		})
	}

	return c.JSON(models.StatsResponse{
		Location: s.store.Location(),
		InMemory: s.store.InMemory(),
		Storage:  stats,
	})
}

// NotFound handles 404 errors
func (s *Server) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NOT_FOUND",
			Message: "Route not found",
			Path:    c.Path(),
		},
	})
}
