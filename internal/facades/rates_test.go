package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatesHTTPFacade_GetLatestRates(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-app-id", r.URL.Query().Get("app_id"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92,"GBP":0.79}}`))
		}))
		defer srv.Close()

		facade := NewRatesHTTPFacade(srv.Client(), srv.URL, "test-app-id")

		rates, err := facade.GetLatestRates(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, map[string]float64{"EUR": 0.92, "GBP": 0.79}, rates)
	})

	t.Run("non-OK status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		facade := NewRatesHTTPFacade(srv.Client(), srv.URL, "bad-app-id")

		_, err := facade.GetLatestRates(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		facade := NewRatesHTTPFacade(srv.Client(), srv.URL, "test-app-id")

		_, err := facade.GetLatestRates(context.Background())
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		facade := NewRatesHTTPFacade(nil, srv.URL, "test-app-id")

		_, err := facade.GetLatestRates(context.Background())
		assert.Error(t, err)
	})
}
