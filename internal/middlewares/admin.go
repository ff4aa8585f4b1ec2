package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

// RoleReader re-derives a user's role from the credential store. The
// session only retains the username, so the role is looked up per request.
type RoleReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// AdminMiddleware returns a middleware that allows only users whose role is
// "admin". It must run after SessionMiddleware.
func AdminMiddleware(users RoleReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			username := UsernameFromContext(ctx)
			if username == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetByUsername(ctx, username)
			if err != nil {
				logger.Log.Errorw("failed to look up user role", "username", username, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil || user.Role != models.RoleAdmin {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
