// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/quillhq/quill-api/internal/api"
	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/service/auth"
	"github.com/quillhq/quill-api/internal/store"
)

// AuthMiddleware validates bearer tokens and resolves the authenticated
// user for downstream handlers.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
	logger     *slog.Logger
}

// NewAuthMiddleware creates middleware backed by the given token
// verifier and user store.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
		logger:     slog.Default().With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate verifies the Authorization header, loads the user the
// token was issued for, and stores it in the request context. Requests
// without a valid token receive 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			api.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			api.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			api.RespondWithError(w, r, http.StatusUnauthorized, message)
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), claims.Email)
		if err != nil {
			if !store.IsNotFoundError(err) {
				log := logger.FromContext(r.Context())
				log.Error("failed to load authenticated user",
					slog.String("error", err.Error()))
			}
			api.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(api.WithUser(r.Context(), user)))
	})
}

// RequireAdmin rejects requests whose authenticated user lacks the
// admin role. It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := api.UserFrom(r.Context())
		if !ok {
			api.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		if !user.IsAdmin() {
			api.RespondWithError(w, r, http.StatusForbidden, "Do not have permission")
			return
		}
		next.ServeHTTP(w, r)
	})
}
