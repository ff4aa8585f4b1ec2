package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/services"
)

// ItemDeleter removes an item record.
type ItemDeleter interface {
	Delete(ctx context.Context, itemID string) error
}

// DeleteItemResponse represents a successful item deletion
// swagger:model DeleteItemResponse
type DeleteItemResponse struct {
	// Success message
	// default: Item deleted
	Message string `json:"message"`
}

// NewItemDeleteHandler returns an HTTP handler for item deletion.
// The delete is hard. Runs behind SessionMiddleware and AdminMiddleware.
// @Summary Delete an item
// @Description Removes the item record entirely.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Item identifier"
// @Success 200 {object} handlers.DeleteItemResponse "Item deleted"
// @Failure 400 {object} handlers.ItemErrorResponse "Malformed item identifier"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /admin/items/{itemID} [delete]
func NewItemDeleteHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		if err := svc.Delete(r.Context(), itemID); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidItemID):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Error: "Invalid item id",
				})
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Error: "Item not found",
				})
			default:
				logger.Log.Errorw("failed to delete item", "item_id", itemID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteItemResponse{
			Message: "Item deleted",
		})
	}
}
