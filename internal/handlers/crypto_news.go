package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

// NewsGetter serves cryptocurrency news articles.
type NewsGetter interface {
	GetCryptoNews(ctx context.Context) ([]models.NewsArticle, error)
}

// CryptoNewsResponse represents the crypto news payload
// swagger:model CryptoNewsResponse
type CryptoNewsResponse struct {
	// Current cryptocurrency news articles
	Articles []models.NewsArticle `json:"articles"`
}

// CryptoNewsErrorResponse represents an error response for the news feed
// swagger:model CryptoNewsErrorResponse
type CryptoNewsErrorResponse struct {
	// Error message
	// default: Failed to load cryptocurrency news
	Error string `json:"error"`
}

// NewCryptoNewsHandler returns an HTTP handler proxying the crypto news feed.
// @Summary Cryptocurrency news
// @Description Returns current cryptocurrency news from the external feed.
// @Tags feeds
// @Produce json
// @Success 200 {object} handlers.CryptoNewsResponse "Current news articles"
// @Failure 502 {object} handlers.CryptoNewsErrorResponse "Feed unavailable"
// @Router /crypto-news [get]
func NewCryptoNewsHandler(svc NewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := svc.GetCryptoNews(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get crypto news", "err", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(CryptoNewsErrorResponse{
				Error: "Failed to load cryptocurrency news",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CryptoNewsResponse{Articles: articles})
	}
}
