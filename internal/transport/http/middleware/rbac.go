package middleware

import (
	"net/http"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// RequireAdmin allows only admins past this point.
// Assumes Auth() middleware has already injected the role into context.
func RequireAdmin(writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or context missing
				writeErr(w, r, domain.ErrTokenUnauthorized())
				return
			}

			if role != domain.RoleAdmin {
				writeErr(w, r, domain.ErrAdminRequired())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
