package handlers

import (
	"errors"

	"catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// respondError writes the status and body matching err's kind. Storage failures
// are logged and reported without detail.
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var validationErr *models.ValidationError
	var authErr *models.AuthenticationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		errorMessages := make(map[string]string, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			if _, seen := errorMessages[f.Field]; !seen {
				errorMessages[f.Field] = f.Message()
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	case errors.As(err, &authErr):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   authErr.Error(),
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	default:
		logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

// invalidBody is the response for a body that is not the expected JSON shape.
func invalidBody(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	logger.Debug().Err(err).Str("path", c.Path()).Msg("error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// ErrorHandler is the fiber.Config ErrorHandler for errors escaping a handler.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return respondError(c, logger, err)
	}
}
