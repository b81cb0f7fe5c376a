package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/dto"
	"github.com/GlebRadaev/wagerhall/internal/handlers/httperr"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type Service interface {
	Toggle(ctx context.Context, id uuid.UUID, active *bool) (*domain.Market, error)
	DeclareResult(ctx context.Context, id uuid.UUID, winningNumber string) (*domain.Market, error)
	ResetForNewDay(ctx context.Context, id uuid.UUID) (*domain.Market, error)
	UpdateOperatingHours(ctx context.Context, id uuid.UUID, openTime, closeTime *string) (*domain.Market, error)
	TodayWagers(ctx context.Context) (*domain.DayView, error)
}

type AdminHandler struct {
	marketService Service
}

func New(marketService Service) *AdminHandler {
	return &AdminHandler{
		marketService: marketService,
	}
}

// UpdateMarket godoc
//
//	@Summary		Administer a market
//	@Description	Applies one action to a market: toggle_status, declare_result, update_times or daily_reset.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AdminMarketRequestDTO	true	"Action"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminMarketResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Market not found"
//	@Failure		409	{object}	utils.Response	"Result already declared"
//	@Failure		422	{object}	utils.Response	"Invalid action or arguments"
//	@Failure		503	{object}	utils.Response	"Store temporarily unavailable, retry"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/markets [patch]
func (h *AdminHandler) UpdateMarket(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminMarketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Respond(w, domain.ErrInvalidRequest)
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		httperr.Respond(w, domain.ErrInvalidRequest)
		return
	}

	var market *domain.Market
	switch domain.MarketAction(req.Action) {
	case domain.ActionToggleStatus:
		market, err = h.marketService.Toggle(r.Context(), id, req.IsActive)
	case domain.ActionDeclareResult:
		var number string
		if req.WinningNumber != nil {
			number = *req.WinningNumber
		}
		market, err = h.marketService.DeclareResult(r.Context(), id, number)
	case domain.ActionUpdateTimes:
		market, err = h.marketService.UpdateOperatingHours(r.Context(), id, req.OpenTime, req.CloseTime)
	case domain.ActionDailyReset:
		market, err = h.marketService.ResetForNewDay(r.Context(), id)
	default:
		err = domain.ErrInvalidAction
	}
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AdminMarketResponseDTO{
		Success: true,
		Market:  dto.NewMarketResponse(market),
	})
}

// TodayWagers godoc
//
//	@Summary		Today's wagers
//	@Description	Every wager placed today in the market time zone, newest first, with the total staked volume.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DayViewResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/wagers/today [get]
func (h *AdminHandler) TodayWagers(w http.ResponseWriter, r *http.Request) {
	day, err := h.marketService.TodayWagers(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := dto.DayViewResponseDTO{
		TotalVolume: day.TotalVolume,
		Count:       len(day.Wagers),
		Wagers:      make([]dto.WagerResponseDTO, 0, len(day.Wagers)),
	}
	for i := range day.Wagers {
		response.Wagers = append(response.Wagers, dto.NewWagerResponse(&day.Wagers[i], true))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
