package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/dto"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func ptr[T any](v T) *T { return &v }

func TestUpdateMarketHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	market := &domain.Market{
		ID:        id,
		Name:      "Kalyan",
		OpenTime:  domain.NewTimeOfDay(9, 0, 0),
		CloseTime: domain.NewTimeOfDay(21, 0, 0),
	}
	body := func(fields string) string {
		return `{"id":"` + id.String() + `",` + fields + `}`
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Toggle with explicit flag",
			body: body(`"action":"toggle_status","is_active":false`),
			prepareMock: func() {
				service.EXPECT().Toggle(gomock.Any(), id, ptr(false)).Return(market, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Toggle without flag",
			body: body(`"action":"toggle_status"`),
			prepareMock: func() {
				service.EXPECT().Toggle(gomock.Any(), id, (*bool)(nil)).Return(market, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Declare result",
			body: body(`"action":"declare_result","winning_number":"250"`),
			prepareMock: func() {
				service.EXPECT().DeclareResult(gomock.Any(), id, "250").Return(market, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Declare result without number",
			body: body(`"action":"declare_result"`),
			prepareMock: func() {
				service.EXPECT().DeclareResult(gomock.Any(), id, "").Return(nil, domain.ErrMissingWinningNumber)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrMissingWinningNumber.Message,
		},
		{
			name: "Declare twice",
			body: body(`"action":"declare_result","winning_number":"7"`),
			prepareMock: func() {
				service.EXPECT().DeclareResult(gomock.Any(), id, "7").Return(nil, domain.ErrAlreadyDeclared)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrAlreadyDeclared.Message,
		},
		{
			name: "Update times",
			body: body(`"action":"update_times","open_time":"10:00","close_time":"22:00"`),
			prepareMock: func() {
				service.EXPECT().UpdateOperatingHours(gomock.Any(), id, ptr("10:00"), ptr("22:00")).Return(market, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Daily reset",
			body: body(`"action":"daily_reset"`),
			prepareMock: func() {
				service.EXPECT().ResetForNewDay(gomock.Any(), id).Return(market, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown market",
			body: body(`"action":"daily_reset"`),
			prepareMock: func() {
				service.EXPECT().ResetForNewDay(gomock.Any(), id).Return(nil, domain.ErrMarketNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrMarketNotFound.Message,
		},
		{
			name:          "Unknown action",
			body:          body(`"action":"delete"`),
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidAction.Message,
		},
		{
			name:          "Missing id",
			body:          `{"action":"daily_reset"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidRequest.Message,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidRequest.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPatch, "/api/admin/markets", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()
			handler.UpdateMarket(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.AdminMarketResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.True(t, resp.Success)
			assert.Equal(t, id.String(), resp.Market.ID)
			assert.Equal(t, "09:00:00", resp.Market.OpenTime)
		})
	}
}

func TestTodayWagersHandler(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)
	accountID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "Lists today's wagers with owners",
			prepareMock: func() {
				service.EXPECT().TodayWagers(gomock.Any()).Return(&domain.DayView{
					Wagers: []domain.Wager{
						{ID: uuid.New(), AccountID: accountID, GameType: domain.Jodi, Number: "42", Amount: 100, Status: domain.WagerPending, CreatedAt: created},
						{ID: uuid.New(), AccountID: accountID, GameType: domain.SingleDigit, Number: "7", Amount: 50, Status: domain.WagerPending, CreatedAt: created},
					},
					TotalVolume: 150,
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp dto.DayViewResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, int64(150), resp.TotalVolume)
				assert.Equal(t, 2, resp.Count)
				require.Len(t, resp.Wagers, 2)
				assert.Equal(t, accountID.String(), resp.Wagers[0].AccountID)
			},
		},
		{
			name: "Empty day",
			prepareMock: func() {
				service.EXPECT().TodayWagers(gomock.Any()).Return(&domain.DayView{}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"total_volume":0,"count":0,"wagers":[]}`, rr.Body.String())
			},
		},
		{
			name: "Store failure",
			prepareMock: func() {
				service.EXPECT().TodayWagers(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			check:        func(t *testing.T, rr *httptest.ResponseRecorder) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/wagers/today", nil)
			rr := httptest.NewRecorder()
			handler.TodayWagers(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.check(t, rr)
		})
	}
}
