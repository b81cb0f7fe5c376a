package games

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/dto"
	"github.com/GlebRadaev/wagerhall/internal/game"
	"github.com/GlebRadaev/wagerhall/internal/handlers/httperr"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

type GameHandler struct{}

func New() *GameHandler {
	return &GameHandler{}
}

// Suggestions godoc
//
//	@Summary		Suggest panna numbers
//	@Description	Completes a 1 or 2 digit prefix into up to five legal canonical numbers for a panna game type. Other game types get an empty list.
//	@Tags			Games
//	@Produce		json
//	@Param			gameType	path		string	true	"Game type"	Enums(single_digit, jodi, single_panna, double_panna, triple_panna)
//	@Param			prefix		query		string	true	"Typed digits"
//	@Success		200			{object}	dto.SuggestionsResponseDTO
//	@Failure		422			{object}	utils.Response	"Unknown game type"
//	@Router			/api/games/{gameType}/suggestions [get]
func (h *GameHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	gameType := domain.GameType(chi.URLParam(r, "gameType"))
	if !gameType.Valid() {
		httperr.Respond(w, domain.ErrInvalidGameType)
		return
	}

	prefix := r.URL.Query().Get("prefix")
	suggestions := game.Suggest(gameType, prefix)
	if suggestions == nil {
		suggestions = []string{}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SuggestionsResponseDTO{
		GameType:    string(gameType),
		Prefix:      prefix,
		Suggestions: suggestions,
	})
}
