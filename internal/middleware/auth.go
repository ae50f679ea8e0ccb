package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wellnessbuddy/api/internal/ctxkeys"
	"github.com/wellnessbuddy/api/internal/service"
)

// RequireAuth rejects requests without a valid `Authorization: Bearer <jwt>`
// header before any store access, and attaches the verified user id and raw
// token to the request context.
func RequireAuth(authService *service.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing or invalid Authorization header")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing bearer token")
				return
			}

			userID, err := authService.VerifyToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Invalid or expired token")
				return
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			ctx = ctxkeys.WithToken(ctx, token)
			next(w, r.WithContext(ctx))
		}
	}
}

// writeJSONError mirrors the handler error envelope; kept local so the
// middleware package does not depend on the handlers it guards.
func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
