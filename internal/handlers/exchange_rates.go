package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// RatesGetter serves the latest exchange rates.
type RatesGetter interface {
	GetRates(ctx context.Context) (map[string]float64, error)
}

// ExchangeRatesResponse represents the exchange rates payload
// swagger:model ExchangeRatesResponse
type ExchangeRatesResponse struct {
	// Exchange rates keyed by currency code
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRatesErrorResponse represents an error response for the rates feed
// swagger:model ExchangeRatesErrorResponse
type ExchangeRatesErrorResponse struct {
	// Error message
	// default: Failed to load exchange rates
	Error string `json:"error"`
}

// NewExchangeRatesHandler returns an HTTP handler proxying the exchange
// rates feed.
// @Summary Exchange rates
// @Description Returns the latest exchange rates from the external feed, cached in Redis.
// @Tags feeds
// @Produce json
// @Success 200 {object} handlers.ExchangeRatesResponse "Current exchange rates"
// @Failure 502 {object} handlers.ExchangeRatesErrorResponse "Feed unavailable"
// @Router /exchange-rates [get]
func NewExchangeRatesHandler(svc RatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.GetRates(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get exchange rates", "err", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(ExchangeRatesErrorResponse{
				Error: "Failed to load exchange rates",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExchangeRatesResponse{Rates: rates})
	}
}
