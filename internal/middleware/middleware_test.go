package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	session *models.Session
	err     error
}

func (s stubValidator) ValidateToken(string) (*models.Session, error) {
	return s.session, s.err
}

func TestAuthRequired(t *testing.T) {
	valid := stubValidator{session: &models.Session{UserID: 9, Email: "a@b.com", TokenID: "t"}}
	invalid := stubValidator{err: errors.New("invalid token: signature is invalid")}

	tests := []struct {
		name           string
		validator      TokenValidator
		header         string
		expectedStatus int
		expectHandler  bool
	}{
		{
			name:           "Valid token",
			validator:      valid,
			header:         "Bearer good",
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "Missing header",
			validator:      valid,
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			validator:      valid,
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Empty bearer",
			validator:      valid,
			header:         "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Rejected token",
			validator:      invalid,
			header:         "Bearer forged",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			app := fiber.New()
			app.Get("/test", AuthRequired(tt.validator, zerolog.Nop()), func(c *fiber.Ctx) error {
				handlerCalled = true

				session, ok := Session(c)
				require.True(t, ok)
				assert.Equal(t, int64(9), session.UserID)

				fromCtx, ok := services.SessionFromContext(c.UserContext())
				require.True(t, ok)
				assert.Equal(t, session, fromCtx)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectHandler, handlerCalled)
		})
	}
}

func TestLoggingAndRecovery(t *testing.T) {
	app := fiber.New()
	app.Use(Logging(zerolog.Nop()))
	app.Use(Recovery(zerolog.Nop()))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
