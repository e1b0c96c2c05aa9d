package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goldvault/transparent-gold-backend/api"
)

type contextKey struct{}

// RequireBearer rejects requests without a valid "Authorization: Bearer"
// token with 401, and stores the token's email in the request context.
func RequireBearer(tokens *TokenIssuer, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				api.WriteMessage(w, http.StatusUnauthorized, "no auth")
				return
			}

			email, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Debug("rejected bearer token", "err", err, "path", r.URL.Path)
				api.WriteMessage(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, email)))
		})
	}
}

// EmailFromContext returns the email RequireBearer authenticated.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(contextKey{}).(string)
	return email, ok
}
