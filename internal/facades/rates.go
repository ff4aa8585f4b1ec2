package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// RatesHTTPFacade fetches the latest exchange rates from the
// openexchangerates HTTP API.
type RatesHTTPFacade struct {
	client  *http.Client
	baseURL string
	appID   string
}

// NewRatesHTTPFacade creates a facade for the given endpoint and app id.
// A nil client falls back to http.DefaultClient.
func NewRatesHTTPFacade(client *http.Client, baseURL, appID string) *RatesHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &RatesHTTPFacade{client: client, baseURL: baseURL, appID: appID}
}

// ratesResponse mirrors the relevant part of the openexchangerates payload.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// GetLatestRates fetches the current exchange rates keyed by currency code.
func (f *RatesHTTPFacade) GetLatestRates(ctx context.Context) (map[string]float64, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("app_id", f.appID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("exchange rates endpoint returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("exchange rates endpoint returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode exchange rates response", "error", err)
		return nil, err
	}

	return body.Rates, nil
}
