package server

import "github.com/gofiber/fiber/v2"

var healthResponse = fiber.Map{"status": "ok", "service": "postboard"}

// HealthCheck reports that the process is serving. It does not touch the store.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(healthResponse)
}
