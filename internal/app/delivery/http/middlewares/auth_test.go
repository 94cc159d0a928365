package middlewares

import (
	"net/http"
	"net/http/httptest"
	"salon-service/internal/app/config"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(secret string) *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	m := newTestMiddlewares(secret)

	echoHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok, "user ID should be set in context")
		assert.Equal(t, "user-42", userID)

		role, ok := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
		assert.True(t, ok, "role should be set in context")
		assert.Equal(t, constvars.RoleCustomer, role)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("user-42", constvars.RoleCustomer, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/auth/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

		rr := httptest.NewRecorder()
		m.Authenticate(echoHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/auth/profile", nil)

		rr := httptest.NewRecorder()
		m.Authenticate(echoHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("tampered token is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("user-42", constvars.RoleCustomer, "other-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/auth/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

		rr := httptest.NewRecorder()
		m.Authenticate(echoHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	secret := "test-secret"
	m := newTestMiddlewares(secret)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(role string, guard func(http.Handler) http.Handler) *httptest.ResponseRecorder {
		token, err := utils.GenerateAuthJWT("user-42", role, secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/services", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)

		rr := httptest.NewRecorder()
		m.Authenticate(guard(okHandler)).ServeHTTP(rr, req)
		return rr
	}

	t.Run("allowed role passes", func(t *testing.T) {
		rr := serve(constvars.RoleAdmin, m.RequireRole(constvars.RoleAdmin))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("any of several roles passes", func(t *testing.T) {
		rr := serve(constvars.RoleStaff, m.RequireRole(constvars.RoleStaff, constvars.RoleAdmin))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("disallowed role is forbidden", func(t *testing.T) {
		rr := serve(constvars.RoleCustomer, m.RequireRole(constvars.RoleAdmin))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
