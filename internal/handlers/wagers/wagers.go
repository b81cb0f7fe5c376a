package wagers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/dto"
	"github.com/GlebRadaev/wagerhall/internal/handlers/httperr"
	"github.com/GlebRadaev/wagerhall/internal/service/wagerservice"
	"github.com/GlebRadaev/wagerhall/pkg/auth"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

//go:generate mockgen -source=wagers.go -destination=mock_wagers.go -package=wagers

type Service interface {
	PlaceWager(ctx context.Context, req wagerservice.PlaceWagerRequest) (*wagerservice.PlaceWagerResult, error)
	GetWagers(ctx context.Context, accountID uuid.UUID) ([]domain.Wager, error)
}

type WagerHandler struct {
	wagerService Service
}

func New(wagerService Service) *WagerHandler {
	return &WagerHandler{
		wagerService: wagerService,
	}
}

// PlaceWager godoc
//
//	@Summary		Place a wager
//	@Description	Debits the stake and records a pending wager in one transaction. Panna numbers are stored in canonical order.
//	@Tags			Wagers
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PlaceWagerRequestDTO	true	"Wager"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PlaceWagerResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		404	{object}	utils.Response	"Market not found"
//	@Failure		409	{object}	utils.Response	"Market closed or outside its hours"
//	@Failure		422	{object}	utils.Response	"Invalid stake, number or request"
//	@Failure		429	{object}	utils.Response	"Too many requests"
//	@Failure		503	{object}	utils.Response	"Store temporarily unavailable, retry"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wagers [post]
func (h *WagerHandler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		httperr.Respond(w, domain.ErrUnauthorized)
		return
	}

	var req dto.PlaceWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Respond(w, domain.ErrInvalidRequest)
		return
	}
	marketID, err := uuid.Parse(req.MarketID)
	if err != nil {
		httperr.Respond(w, domain.ErrInvalidRequest)
		return
	}

	result, err := h.wagerService.PlaceWager(r.Context(), wagerservice.PlaceWagerRequest{
		AccountID: accountID,
		MarketID:  marketID,
		GameType:  domain.GameType(req.GameType),
		Number:    req.Number,
		Amount:    req.Amount,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.PlaceWagerResponseDTO{
		WagerID:    result.Wager.ID.String(),
		Number:     result.Wager.Number,
		NewBalance: result.NewBalance,
	})
}

// GetWagers godoc
//
//	@Summary		Wager history
//	@Description	The caller's most recent wagers, newest first.
//	@Tags			Wagers
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WagerResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wagers [get]
func (h *WagerHandler) GetWagers(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountID(r.Context())
	if !ok {
		httperr.Respond(w, domain.ErrUnauthorized)
		return
	}

	wagers, err := h.wagerService.GetWagers(r.Context(), accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.WagerResponseDTO, 0, len(wagers))
	for i := range wagers {
		response = append(response, dto.NewWagerResponse(&wagers[i], false))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
