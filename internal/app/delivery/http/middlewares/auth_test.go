package middlewares

import (
	"context"
	"lifelink-service/internal/app/config"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

type fakeSessionService struct {
	sessions map[string]string
}

func (s *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return s.sessions[sessionID], nil
}

func (s *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, err
	}
	return session, nil
}

func signTestToken(t *testing.T, sessionID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func storedSession(t *testing.T, userID, role string) string {
	t.Helper()
	payload, err := json.Marshal(&models.Session{
		SessionID: "sess-1",
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return string(payload)
}

func newTestMiddlewares(sessions map[string]string) *Middlewares {
	return NewMiddlewares(
		&fakeSessionService{sessions: sessions},
		&config.InternalConfig{JWT: config.JWT{Secret: testJWTSecret}},
		zap.NewNop(),
	)
}

func TestAuthenticate(t *testing.T) {
	sessionHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		require.True(t, ok, "session should be set in context")
		assert.Equal(t, "donor-1", session.UserID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token resolves the session", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{"sess-1": storedSession(t, "donor-1", constvars.RoleDonor)})

		req := httptest.NewRequest("GET", "/api/v1/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		m.Authenticate(sessionHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		req := httptest.NewRequest("GET", "/api/v1/requests", nil)
		rr := httptest.NewRecorder()
		m.Authenticate(sessionHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		req := httptest.NewRequest("GET", "/api/v1/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		m.Authenticate(sessionHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token without a stored session", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		req := httptest.NewRequest("GET", "/api/v1/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, "sess-ghost"))

		rr := httptest.NewRecorder()
		m.Authenticate(sessionHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		payload, err := json.Marshal(&models.Session{
			SessionID: "sess-1",
			UserID:    "donor-1",
			Role:      constvars.RoleDonor,
			ExpiresAt: time.Now().Add(-time.Minute),
		})
		require.NoError(t, err)
		m := newTestMiddlewares(map[string]string{"sess-1": string(payload)})

		req := httptest.NewRequest("GET", "/api/v1/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		m.Authenticate(sessionHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{"sess-1": storedSession(t, "facility-1", constvars.RoleFacility)})

		req := httptest.NewRequest("POST", "/api/v1/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		handler := m.Authenticate(m.RequireRole(constvars.RoleFacility)(okHandler))
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("role mismatch is forbidden", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{"sess-1": storedSession(t, "donor-1", constvars.RoleDonor)})

		req := httptest.NewRequest("POST", "/api/v1/requests", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		handler := m.Authenticate(m.RequireRole(constvars.RoleFacility)(okHandler))
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("stacked without authenticate", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		req := httptest.NewRequest("POST", "/api/v1/requests", nil)
		rr := httptest.NewRecorder()
		m.RequireRole(constvars.RoleFacility)(okHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
