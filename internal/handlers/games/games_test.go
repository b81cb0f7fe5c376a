package games

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/wagerhall/internal/dto"
)

func TestSuggestions(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/games/{gameType}/suggestions", New().Suggestions)

	tests := []struct {
		name         string
		url          string
		expectedCode int
		expected     []string
	}{
		{
			name:         "Double panna completions",
			url:          "/api/games/double_panna/suggestions?prefix=11",
			expectedCode: http.StatusOK,
			expected:     []string{"110", "112", "113", "114", "115"},
		},
		{
			name:         "Triple panna has a single completion",
			url:          "/api/games/triple_panna/suggestions?prefix=7",
			expectedCode: http.StatusOK,
			expected:     []string{"777"},
		},
		{
			name:         "Jodi gets nothing",
			url:          "/api/games/jodi/suggestions?prefix=4",
			expectedCode: http.StatusOK,
			expected:     []string{},
		},
		{
			name:         "Unknown game type",
			url:          "/api/games/quad/suggestions?prefix=1",
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp dto.SuggestionsResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expected, resp.Suggestions)
		})
	}
}
