package middleware

import (
	"net/http"
	"strings"

	"github.com/feedbackloop/feedback-service/internal/application/auth"
	"github.com/feedbackloop/feedback-service/internal/domain"
	"github.com/feedbackloop/feedback-service/internal/logger"
)

type TokenVerifier interface {
	VerifyToken(token string) (auth.TokenClaims, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <token> and injects the caller's
// identity into the request context.
//
// A missing header is reported as token_missing. Every verification failure
// is collapsed into token_unauthorized so callers cannot distinguish an
// expired token from a forged one. The precise reason is still logged.
func Auth(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenUnauthorized())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenUnauthorized())
				return
			}

			claims, err := verifier.VerifyToken(raw)
			if err != nil {
				log := logger.WithCtx(r.Context())
				log.Warn().
					Err(err).
					Msg("token_rejected")
				writeErr(w, r, domain.ErrTokenUnauthorized())
				return
			}

			if strings.TrimSpace(claims.UserID) == "" {
				writeErr(w, r, domain.ErrTokenUnauthorized())
				return
			}

			ctx := WithUser(r.Context(), claims.UserID, claims.Username, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
