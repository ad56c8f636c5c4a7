// Package service holds the account and post use cases on top of the repositories.
package service

import "postboard/internal/models"

// Errors with client-facing messages. Handlers return their Message verbatim.
var (
	ErrInvalidCredentials = models.NewUnauthorizedError("Invalid email or password")
	ErrPostNotFound       = &models.AppError{Code: models.CodeNotFound, Message: "Post not found"}
	ErrForbidden          = models.NewForbiddenError("Forbidden")
)
