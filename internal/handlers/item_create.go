package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
	"github.com/sbilibin2017/gw-trading-hub/internal/services"
)

// ItemCreator persists a new catalog item.
type ItemCreator interface {
	Create(ctx context.Context, in services.CreateItemInput) (*models.ItemDB, error)
}

// CreateItemRequest represents the JSON body for item creation.
// All fields are opaque strings; nothing is validated server-side.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Owning username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Picture references
	Picture1 string `json:"picture1"`
	Picture2 string `json:"picture2"`
	Picture3 string `json:"picture3"`

	// Display name
	// default: Widget
	Name string `json:"name"`

	// Description
	Description string `json:"description"`
}

// CreateItemResponse represents a successful item creation
// swagger:model CreateItemResponse
type CreateItemResponse struct {
	// The persisted item, including its store-generated identifier
	Item models.ItemDB `json:"item"`
}

// ItemErrorResponse represents an error response for item operations
// swagger:model ItemErrorResponse
type ItemErrorResponse struct {
	// Error message
	// default: Item not found
	Error string `json:"error"`
}

// NewItemCreateHandler returns an HTTP handler for item creation.
// Runs behind SessionMiddleware and AdminMiddleware.
// @Summary Create an item
// @Description Creates a catalog item owned by the given username.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createItemRequest body handlers.CreateItemRequest true "Item creation request"
// @Success 201 {object} handlers.CreateItemResponse "Item created"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid request body"
// @Router /admin/items [post]
func NewItemCreateHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		item, err := svc.Create(r.Context(), services.CreateItemInput{
			Username:    req.Username,
			Picture1:    req.Picture1,
			Picture2:    req.Picture2,
			Picture3:    req.Picture3,
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			logger.Log.Errorw("failed to create item", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateItemResponse{Item: *item})
	}
}
