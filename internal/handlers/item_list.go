package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

// AllItemLister lists every item regardless of owner.
type AllItemLister interface {
	ListAll(ctx context.Context) ([]models.ItemDB, error)
}

// ItemListResponse represents the administrative item listing
// swagger:model ItemListResponse
type ItemListResponse struct {
	// Every item in the catalog, in creation order
	Items []models.ItemDB `json:"items"`
}

// NewItemListHandler returns an HTTP handler serving the full catalog.
// Runs behind SessionMiddleware and AdminMiddleware.
// @Summary List all items
// @Description Lists every catalog item regardless of owner.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ItemListResponse "All items"
// @Failure 401 "Unauthenticated"
// @Failure 403 "Not an administrator"
// @Router /admin/items [get]
func NewItemListHandler(svc AllItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list items", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ItemListResponse{Items: items})
	}
}
