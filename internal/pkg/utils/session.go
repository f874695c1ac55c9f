package utils

import (
	"context"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/exceptions"
)

// SessionFromContext pulls the session the auth middleware stored. A miss
// means the route was wired without Authenticate.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.WrapWithoutError(
			constvars.StatusUnauthorized,
			constvars.ErrClientNotLoggedIn,
			constvars.ErrDevServerParseSessionData,
		)
	}
	return session, nil
}
