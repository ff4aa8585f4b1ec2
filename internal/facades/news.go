package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

// newsQuery is the fixed topic requested from the news feed.
const newsQuery = "cryptocurrency"

// NewsHTTPFacade fetches cryptocurrency news from the newsdata.io HTTP API.
type NewsHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewNewsHTTPFacade creates a facade for the given endpoint and API key.
// A nil client falls back to http.DefaultClient.
func NewNewsHTTPFacade(client *http.Client, baseURL, apiKey string) *NewsHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &NewsHTTPFacade{client: client, baseURL: baseURL, apiKey: apiKey}
}

// newsResponse mirrors the relevant part of the newsdata.io payload.
type newsResponse struct {
	Results []models.NewsArticle `json:"results"`
}

// GetCryptoNews fetches the current cryptocurrency news articles.
// A payload without results yields an empty slice, not an error.
func (f *NewsHTTPFacade) GetCryptoNews(ctx context.Context) ([]models.NewsArticle, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("apikey", f.apiKey)
	q.Set("q", newsQuery)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch crypto news", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("news endpoint returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("news endpoint returned status %d", resp.StatusCode)
	}

	var body newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode news response", "error", err)
		return nil, err
	}

	if body.Results == nil {
		return []models.NewsArticle{}, nil
	}
	return body.Results, nil
}
