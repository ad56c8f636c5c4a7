// Package server contains the HTTP handlers and route table for the postboard API.
package server

import (
	"context"
	"errors"
	"log/slog"

	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config      *config.Config
	app         *fiber.App
	tokens      auth.TokenCodec
	authService *service.AuthService
	postService *service.PostService
}

// NewServerWithDeps creates a Server on top of already-opened repositories.
// Password hashing and token signing are configured from cfg.
func NewServerWithDeps(cfg *config.Config, users repository.UserRepository, posts repository.PostRepository) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: nil config")
	}
	if users == nil || posts == nil {
		return nil, errors.New("server: repositories are required")
	}

	tokens := auth.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	s := &Server{
		config:      cfg,
		tokens:      tokens,
		authService: service.NewAuthService(users, hasher, tokens),
		postService: service.NewPostService(posts, users),
	}
	s.app = s.NewApp()
	return s, nil
}

// NewApp returns a Fiber app with the middleware stack and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "postboard",
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID must run before the context and logging middleware.
	app.Use(middleware.RequestID())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400,
	}))
}

// errorHandler renders errors that escape a handler, including recovered panics.
// Fiber's own errors (unknown route, wrong method) keep their status.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return models.RespondWithError(c, fe.Code, fe.Message)
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
}

// App returns the Fiber app the server listens with.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start blocks serving on the configured port.
func (s *Server) Start() error {
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	middleware.Logger.Info("Server shutdown complete")
	return nil
}
