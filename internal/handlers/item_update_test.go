package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-trading-hub/internal/services"
)

// withItemID attaches the itemID chi route parameter to the request.
func withItemID(r *http.Request, itemID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("itemID", itemID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestItemUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const itemID = "0d9fd0a3-1f6c-4a51-8b0e-3a6b0a0a7f11"

	tests := []struct {
		name         string
		reqBody      UpdateItemRequest
		mockSetup    func(m *MockItemUpdater)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: UpdateItemRequest{Name: "Widget", Description: "Updated"},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), itemID, "Widget", "Updated").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Item updated"},
		},
		{
			name:    "invalid item id",
			reqBody: UpdateItemRequest{Name: "Widget"},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), itemID, "Widget", "").
					Return(services.ErrInvalidItemID)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid item id"},
		},
		{
			name:    "item not found",
			reqBody: UpdateItemRequest{Name: "Widget"},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), itemID, "Widget", "").
					Return(services.ErrItemNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Item not found"},
		},
		{
			name:    "store failure",
			reqBody: UpdateItemRequest{Name: "Widget"},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), itemID, "Widget", "").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{not json")
			} else {
				b, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(b)
			}

			req := httptest.NewRequest(http.MethodPut, "/admin/items/"+itemID, body)
			req = withItemID(req, itemID)
			rec := httptest.NewRecorder()

			NewItemUpdateHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
