package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/token"
)

type ctxKey int

const claimsKey ctxKey = iota

const bearerScheme = "Bearer"

// Authenticator extracts the bearer token from the Authorization
// header and verifies it. The check runs exactly once per request and
// short-circuits before any handler logic runs.
func Authenticator(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				apperr.WriteJSON(w, err)
				return
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				apperr.WriteJSON(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// UnverifiedClaims extracts the bearer token and decodes it without
// verification. It exists for the narrow "who is this, even if stale"
// introspection path and must never guard a mutating route.
func UnverifiedClaims(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				apperr.WriteJSON(w, err)
				return
			}

			claims, err := codec.DecodeUnverified(raw)
			if err != nil {
				apperr.WriteJSON(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// bearerToken pulls the raw token out of the Authorization header.
// The scheme prefix is case-sensitive; whitespace after it is tolerated.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", apperr.ErrMissingBearerToken
	}

	if !strings.HasPrefix(header, bearerScheme) {
		return "", apperr.ErrMissingBearerToken
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, bearerScheme))
	if raw == "" {
		return "", apperr.ErrMissingBearerToken
	}

	return raw, nil
}

func withClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by one of the middlewares.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}
