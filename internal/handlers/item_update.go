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

// ItemUpdater overwrites an item's name and description.
type ItemUpdater interface {
	Update(ctx context.Context, itemID, name, description string) error
}

// UpdateItemRequest represents the JSON body for item editing
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	// New display name
	// default: Widget
	Name string `json:"name"`

	// New description
	Description string `json:"description"`
}

// UpdateItemResponse represents a successful item update
// swagger:model UpdateItemResponse
type UpdateItemResponse struct {
	// Success message
	// default: Item updated
	Message string `json:"message"`
}

// NewItemUpdateHandler returns an HTTP handler for item editing. Only name
// and description change; pictures and owner are untouched.
// Runs behind SessionMiddleware and AdminMiddleware.
// @Summary Update an item
// @Description Overwrites an item's name and description and stamps the update timestamp.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Item identifier"
// @Param updateItemRequest body handlers.UpdateItemRequest true "Item update request"
// @Success 200 {object} handlers.UpdateItemResponse "Item updated"
// @Failure 400 {object} handlers.ItemErrorResponse "Malformed item identifier / invalid request"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /admin/items/{itemID} [put]
func NewItemUpdateHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Update(r.Context(), itemID, req.Name, req.Description); err != nil {
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
				logger.Log.Errorw("failed to update item", "item_id", itemID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateItemResponse{
			Message: "Item updated",
		})
	}
}
