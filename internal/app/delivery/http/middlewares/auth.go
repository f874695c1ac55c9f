package middlewares

import (
	"context"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/exceptions"
	"lifelink-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		session, err := m.SessionService.ParseSessionData(ctx, sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		reqCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// RequireRole gates a route on the session role. Always stacked after
// Authenticate.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if session.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleMismatch(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
