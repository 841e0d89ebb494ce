package services

import (
	"context"

	"catalog/internal/models"
)

type sessionKey struct{}

// ContextWithSession attaches the authenticated caller to ctx.
func ContextWithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the caller attached by ContextWithSession, if any.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*models.Session)
	return s, ok && s != nil
}
