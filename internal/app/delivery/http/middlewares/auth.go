package middlewares

import (
	"context"
	"net/http"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"strings"
)

// Authenticate verifies the bearer token and stores the authenticated user ID
// and role in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.BearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, constvars.BearerPrefix)
		userID, role, err := utils.ParseAuthJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, userID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route to the listed roles. Must run after Authenticate.
func (m *Middlewares) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrForbidden(nil))
		})
	}
}
