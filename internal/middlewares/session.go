package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// SessionResolver resolves an opaque session token to a username.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (string, bool, error)
}

// usernameContextKey is an unexported type for context keys in this package.
type usernameContextKey struct{}

var usernameKey = usernameContextKey{}

// TokenFromRequest extracts the session token from the Authorization header.
func TokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// UsernameFromContext returns the authenticated username stored by
// SessionMiddleware, or an empty string if none.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// SessionMiddleware returns a middleware that resolves the session token to
// a username and stores it in the request context. Requests without a valid
// session are rejected as unauthenticated.
func SessionMiddleware(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := TokenFromRequest(r)
			if err != nil {
				logger.Log.Errorw("session authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			username, ok, err := sessions.CurrentUser(ctx, token)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
