package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody utils.Response
		retryAfter   string
	}{
		{"Invalid stake", domain.ErrInvalidStake, http.StatusUnprocessableEntity, utils.Response{Message: domain.ErrInvalidStake.Message, Code: "invalid_stake"}, ""},
		{"Market not found", domain.ErrMarketNotFound, http.StatusNotFound, utils.Response{Message: "market not found", Code: "market_not_found"}, ""},
		{"Outside hours", domain.ErrMarketOutsideHours, http.StatusConflict, utils.Response{Message: domain.ErrMarketOutsideHours.Message, Code: "market_outside_hours"}, ""},
		{"Insufficient balance", domain.ErrInsufficientBalance, http.StatusPaymentRequired, utils.Response{Message: domain.ErrInsufficientBalance.Message, Code: "insufficient_balance"}, ""},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden, utils.Response{Message: "forbidden", Code: "forbidden"}, ""},
		{"Wrapped transient", fmt.Errorf("%w: %w", domain.ErrTransientStore, errors.New("conn reset")), http.StatusServiceUnavailable, utils.Response{Message: domain.ErrTransientStore.Message, Code: "store_unavailable"}, "1"},
		{"Unknown error", errors.New("pq: relation does not exist"), http.StatusInternalServerError, utils.Response{Message: "internal server error", Code: "internal"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Respond(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.retryAfter, rr.Header().Get("Retry-After"))

			var resp utils.Response
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
