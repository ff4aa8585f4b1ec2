package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/middlewares"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

// OwnedItemLister lists the items owned by a username.
type OwnedItemLister interface {
	ListForUser(ctx context.Context, username string) ([]models.ItemDB, error)
}

// DashboardResponse represents the per-user dashboard payload
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Items owned by the authenticated user, in creation order
	Items []models.ItemDB `json:"items"`
}

// NewDashboardHandler returns an HTTP handler serving the authenticated
// user's items. Runs behind SessionMiddleware.
// @Summary User dashboard
// @Description Lists the items owned by the authenticated user.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.DashboardResponse "Items owned by the user"
// @Failure 401 "Unauthenticated"
// @Router /dashboard [get]
func NewDashboardHandler(svc OwnedItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middlewares.UsernameFromContext(r.Context())

		items, err := svc.ListForUser(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("failed to list user items", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{Items: items})
	}
}
