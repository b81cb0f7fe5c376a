package dto

import (
	"time"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

type MarketResponseDTO struct {
	ID                 string    `json:"id" example:"6f1c2a9e-1d2b-4c3d-9e8f-0a1b2c3d4e5f"`
	Name               string    `json:"name" example:"Kalyan"`
	OpenTime           string    `json:"open_time" example:"09:00:00"`
	CloseTime          string    `json:"close_time" example:"21:00:00"`
	IsActive           bool      `json:"is_active" example:"true"`
	TodayWinningNumber *string   `json:"today_winning_number" example:"250"`
	UpdatedAt          time.Time `json:"updated_at" example:"2026-10-18T09:00:00+05:30"`
}

type MarketStatusResponseDTO struct {
	MarketResponseDTO
	IsOpen   bool  `json:"is_open" example:"true"`
	ClosesIn int64 `json:"closes_in" example:"3600"`
}

// AdminMarketRequestDTO is the body of every administrative market action.
// Fields other than id and action apply to specific actions only.
type AdminMarketRequestDTO struct {
	ID            string  `json:"id" example:"6f1c2a9e-1d2b-4c3d-9e8f-0a1b2c3d4e5f"`
	Action        string  `json:"action" example:"declare_result" enums:"toggle_status,declare_result,update_times,daily_reset"`
	IsActive      *bool   `json:"is_active,omitempty" example:"false"`
	WinningNumber *string `json:"winning_number,omitempty" example:"250"`
	OpenTime      *string `json:"open_time,omitempty" example:"09:00"`
	CloseTime     *string `json:"close_time,omitempty" example:"21:00"`
}

type AdminMarketResponseDTO struct {
	Success bool              `json:"success" example:"true"`
	Market  MarketResponseDTO `json:"market"`
}

func NewMarketResponse(m *domain.Market) MarketResponseDTO {
	return MarketResponseDTO{
		ID:                 m.ID.String(),
		Name:               m.Name,
		OpenTime:           m.OpenTime.String(),
		CloseTime:          m.CloseTime.String(),
		IsActive:           m.IsActive,
		TodayWinningNumber: m.TodayWinningNumber,
		UpdatedAt:          m.UpdatedAt,
	}
}

func NewMarketStatusResponse(v *domain.MarketView) MarketStatusResponseDTO {
	return MarketStatusResponseDTO{
		MarketResponseDTO: NewMarketResponse(&v.Market),
		IsOpen:            v.IsOpen,
		ClosesIn:          int64(v.ClosesIn.Seconds()),
	}
}
