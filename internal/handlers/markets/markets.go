package markets

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/dto"
	"github.com/GlebRadaev/wagerhall/internal/handlers/httperr"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

//go:generate mockgen -source=markets.go -destination=mock_markets.go -package=markets

type Service interface {
	ListMarkets(ctx context.Context) ([]domain.MarketView, error)
	GetMarket(ctx context.Context, id uuid.UUID) (*domain.MarketView, error)
}

type MarketHandler struct {
	marketService Service
}

func New(marketService Service) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// ListMarkets godoc
//
//	@Summary		List markets
//	@Description	All markets ordered by opening time, with whether each accepts wagers right now.
//	@Tags			Markets
//	@Produce		json
//	@Success		200	{array}		dto.MarketStatusResponseDTO
//	@Failure		503	{object}	utils.Response	"Store temporarily unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/markets [get]
func (h *MarketHandler) ListMarkets(w http.ResponseWriter, r *http.Request) {
	views, err := h.marketService.ListMarkets(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.MarketStatusResponseDTO, 0, len(views))
	for i := range views {
		response = append(response, dto.NewMarketStatusResponse(&views[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMarket godoc
//
//	@Summary		Get market
//	@Tags			Markets
//	@Produce		json
//	@Param			id	path		string	true	"Market ID"
//	@Success		200	{object}	dto.MarketStatusResponseDTO
//	@Failure		404	{object}	utils.Response	"Market not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/markets/{id} [get]
func (h *MarketHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, domain.ErrMarketNotFound)
		return
	}

	view, err := h.marketService.GetMarket(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMarketStatusResponse(view))
}
