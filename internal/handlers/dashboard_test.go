package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-trading-hub/internal/middlewares"
	"github.com/sbilibin2017/gw-trading-hub/internal/models"
)

// stubSessionResolver resolves every token to a fixed username.
type stubSessionResolver struct {
	username string
}

func (s stubSessionResolver) CurrentUser(ctx context.Context, token string) (string, bool, error) {
	return s.username, true, nil
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := []models.ItemDB{
		{Username: "john", Name: "Widget"},
		{Username: "john", Name: "Gadget"},
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockOwnedItemLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func(m *MockOwnedItemLister) {
				m.EXPECT().
					ListForUser(gomock.Any(), "john").
					Return(items, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "no items",
			mockSetup: func(m *MockOwnedItemLister) {
				m.EXPECT().
					ListForUser(gomock.Any(), "john").
					Return([]models.ItemDB{}, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "store failure",
			mockSetup: func(m *MockOwnedItemLister) {
				m.EXPECT().
					ListForUser(gomock.Any(), "john").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOwnedItemLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := middlewares.SessionMiddleware(stubSessionResolver{username: "john"})(
				NewDashboardHandler(mockSvc),
			)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.Header.Set("Authorization", "Bearer tok-123")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var got DashboardResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Len(t, got.Items, tt.expectedLen)
			}
		})
	}
}
