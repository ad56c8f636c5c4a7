package server

import (
	"postboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	// Public auth routes
	app.Post("/register", s.Register)
	app.Post("/login", s.Login)

	// Every post route requires a session token
	posts := app.Group("/posts", middleware.AuthRequired(s.tokens))
	posts.Get("/", s.ListPosts)
	posts.Post("/", s.CreatePost)
	posts.Put("/:postId", s.UpdatePost)
	posts.Delete("/:postId", s.DeletePost)
}
