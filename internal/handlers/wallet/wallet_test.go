package wallet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/pkg/auth"
)

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	accountID := uuid.New()

	tests := []struct {
		name         string
		anonymous    bool
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Returns balance",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), accountID).Return(int64(1000), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":1000}`,
		},
		{
			name: "Unknown account",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), accountID).Return(int64(0), domain.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"account not found","code":"account_not_found"}`,
		},
		{
			name: "Unexpected error is not leaked",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), accountID).Return(int64(0), errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error","code":"internal"}`,
		},
		{
			name:         "No caller identity",
			anonymous:    true,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"unauthorized","code":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if !tt.anonymous {
				req = req.WithContext(context.WithValue(req.Context(), auth.AccountIDKey, accountID))
			}
			rr := httptest.NewRecorder()
			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
