package server

import (
	"bytes"
	"errors"
	"log/slog"

	"postboard/internal/middleware"
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

const invalidBodyMessage = "Invalid request body"

// parseBody decodes a JSON request body into dest. An empty body leaves dest untouched.
func parseBody(c *fiber.Ctx, dest any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, dest)
}

// respondInvalidBody rejects a body that is not valid JSON.
func respondInvalidBody(c *fiber.Ctx) error {
	err := models.NewValidationError(invalidBodyMessage)
	return models.RespondWithError(c, models.StatusFor(err.Code), err.Message)
}

// respondError writes the client-facing message of a known AppError. Internal errors
// are logged and replaced with fallback so store details never reach the client.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code != models.CodeInternal {
		return models.RespondWithError(c, models.StatusFor(appErr.Code), appErr.Message)
	}

	middleware.Logger.ErrorContext(c.UserContext(), fallback, slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, fallback)
}
