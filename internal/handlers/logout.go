package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/middlewares"
)

// SessionEnder invalidates a session token.
type SessionEnder interface {
	End(ctx context.Context, token string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. Logout is idempotent:
// a missing or unknown token still yields success.
// @Summary User logout
// @Description Invalidates the session token from the Authorization header.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session ended"
// @Router /logout [post]
func NewLogoutHandler(svc SessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := middlewares.TokenFromRequest(r)
		if err == nil {
			if err := svc.End(r.Context(), token); err != nil {
				logger.Log.Errorw("failed to end session", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
