package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-trading-hub/internal/services"
)

func TestItemDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const itemID = "0d9fd0a3-1f6c-4a51-8b0e-3a6b0a0a7f11"

	tests := []struct {
		name         string
		mockSetup    func(m *MockItemDeleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), itemID).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Item deleted"},
		},
		{
			name: "invalid item id",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), itemID).
					Return(services.ErrInvalidItemID)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid item id"},
		},
		{
			name: "item not found",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), itemID).
					Return(services.ErrItemNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Item not found"},
		},
		{
			name: "store failure",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), itemID).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodDelete, "/admin/items/"+itemID, nil)
			req = withItemID(req, itemID)
			rec := httptest.NewRecorder()

			NewItemDeleteHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
