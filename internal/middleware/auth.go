package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hearingclinic/admin-api/internal/auth"
	"github.com/rs/zerolog/log"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireAuth validates the bearer token and attaches its claims to
// the request context. Missing tokens are 401; present-but-invalid
// tokens (bad signature, malformed, expired) are 403.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw := strings.TrimPrefix(header, "Bearer ")
			if header == "" || raw == header {
				http.Error(w, "Access token required", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("Rejected token")
				http.Error(w, "Invalid token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows only callers whose token carries the given role.
// Must run after RequireAuth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || claims.Role != role {
				http.Error(w, "Insufficient privileges", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims extracts the authenticated claims from the context.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
