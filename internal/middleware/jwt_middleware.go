package middleware

import (
	"strings"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SessionLocal is the fiber.Ctx Locals key holding the *models.Session.
const SessionLocal = "session"

// TokenValidator turns a bearer token into the session it was issued for.
type TokenValidator interface {
	ValidateToken(token string) (*models.Session, error)
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(tokens TokenValidator, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		session, err := tokens.ValidateToken(parts[1])
		if err != nil {
			logger.Warn().Err(err).Str("path", c.Path()).Msg("JWT validation failed")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(SessionLocal, session)
		c.Locals("user_id", session.UserID)
		c.SetUserContext(services.ContextWithSession(c.UserContext(), session))

		return c.Next()
	}
}

// Session returns the session stored by AuthRequired.
func Session(c *fiber.Ctx) (*models.Session, bool) {
	s, ok := c.Locals(SessionLocal).(*models.Session)
	return s, ok && s != nil
}
