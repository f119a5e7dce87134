package httpx

import (
	"net/http"
	"strings"

	"mangaapi/internal/platform/crypto"
)

const RoleAdmin = "ADMIN"

// AuthMiddleware verifies a bearer JWT. A token whose role is ADMIN, or whose
// subject equals adminUserID, is marked as admin.
func AuthMiddleware(secret, adminUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil || claims.Sub == "" {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil)
				return
			}

			admin := claims.Role == RoleAdmin || (adminUserID != "" && claims.Sub == adminUserID)
			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Role, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
