package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewsHTTPFacade_GetCryptoNews(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-api-key", r.URL.Query().Get("apikey"))
			assert.Equal(t, "cryptocurrency", r.URL.Query().Get("q"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results":[{"title":"Bitcoin climbs","link":"https://example.com/btc"}]}`))
		}))
		defer srv.Close()

		facade := NewNewsHTTPFacade(srv.Client(), srv.URL, "test-api-key")

		articles, err := facade.GetCryptoNews(context.Background())
		assert.NoError(t, err)
		assert.Len(t, articles, 1)
		assert.Equal(t, "Bitcoin climbs", articles[0].Title)
		assert.Equal(t, "https://example.com/btc", articles[0].Link)
	})

	t.Run("missing results yields empty slice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer srv.Close()

		facade := NewNewsHTTPFacade(srv.Client(), srv.URL, "test-api-key")

		articles, err := facade.GetCryptoNews(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})

	t.Run("non-OK status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		facade := NewNewsHTTPFacade(srv.Client(), srv.URL, "test-api-key")

		_, err := facade.GetCryptoNews(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		facade := NewNewsHTTPFacade(srv.Client(), srv.URL, "test-api-key")

		_, err := facade.GetCryptoNews(context.Background())
		assert.Error(t, err)
	})
}
