// Package middleware provides authentication and request logging middleware for the application.
package middleware

import (
	"context"
	"log/slog"
	"strings"

	"postboard/internal/auth"
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserIDLocal is the Fiber locals key holding the authenticated user ID.
const UserIDLocal = "userID"

const bearerPrefix = "Bearer "

// AuthRequired returns middleware that rejects requests without a valid session token
// in the Authorization header. The raw token is expected; a "Bearer " prefix is tolerated.
func AuthRequired(codec auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized, "Authentication required")
		}
		if len(token) > len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
			token = strings.TrimSpace(token[len(bearerPrefix):])
		}

		userID, err := codec.Verify(token)
		if err != nil {
			Logger.DebugContext(c.UserContext(), "token rejected", slog.String("error", err.Error()))
			return models.RespondWithError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(UserIDLocal, userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
		return c.Next()
	}
}

// CurrentUserID returns the user ID stored by AuthRequired, or "" on public routes.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocal).(string)
	return id
}
