package middleware

import (
	"context"
	"net/http"
	"strings"

	"forever_server/helpers"
	"forever_server/services"
)

type contextKey string

// UserEmailKey carries the authenticated email through the request context.
const UserEmailKey contextKey = "user_email"

type AuthMiddleware struct {
	Tokens *services.TokenService
	Users  *services.UserService
}

func NewAuthMiddleware(tokens *services.TokenService, users *services.UserService) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens, Users: users}
}

// Authenticate verifies the Bearer token and injects the caller's email into
// the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.Tokens.ValidateToken(parts[1])
		if err != nil {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserEmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin re-checks the caller's role against the user registry. Must
// run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		isAdmin, err := m.Users.IsAdmin(r.Context(), email)
		if err != nil {
			helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to verify role")
			return
		}
		if !isAdmin {
			helpers.WriteErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserEmailFromContext extracts the authenticated email from context.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}
