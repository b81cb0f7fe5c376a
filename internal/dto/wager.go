package dto

import (
	"time"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

type PlaceWagerRequestDTO struct {
	MarketID string `json:"market_id" example:"6f1c2a9e-1d2b-4c3d-9e8f-0a1b2c3d4e5f"`
	GameType string `json:"game_type" example:"single_panna" enums:"single_digit,jodi,single_panna,double_panna,triple_panna"`
	Number   string `json:"number" example:"128"`
	Amount   int64  `json:"amount" example:"100"`
}

type PlaceWagerResponseDTO struct {
	WagerID    string `json:"wager_id" example:"0b7d3c1a-5e4f-4a2b-8c9d-1e2f3a4b5c6d"`
	Number     string `json:"number" example:"128"`
	NewBalance int64  `json:"new_balance" example:"900"`
}

type WagerResponseDTO struct {
	ID         string     `json:"id" example:"0b7d3c1a-5e4f-4a2b-8c9d-1e2f3a4b5c6d"`
	MarketID   string     `json:"market_id" example:"6f1c2a9e-1d2b-4c3d-9e8f-0a1b2c3d4e5f"`
	MarketName string     `json:"market_name" example:"Kalyan"`
	AccountID  string     `json:"account_id,omitempty" example:"4a5b6c7d-8e9f-4a0b-9c1d-2e3f4a5b6c7d"`
	GameType   string     `json:"game_type" example:"jodi"`
	Number     string     `json:"number" example:"42"`
	Amount     int64      `json:"amount" example:"100"`
	Status     string     `json:"status" example:"pending"`
	CreatedAt  time.Time  `json:"created_at" example:"2026-10-18T14:00:00+05:30"`
	SettledAt  *time.Time `json:"settled_at,omitempty" example:"2026-10-18T21:05:00+05:30"`
}

type DayViewResponseDTO struct {
	TotalVolume int64              `json:"total_volume" example:"15000"`
	Count       int                `json:"count" example:"42"`
	Wagers      []WagerResponseDTO `json:"wagers"`
}

type WalletResponseDTO struct {
	Balance int64 `json:"balance" example:"1000"`
}

type SuggestionsResponseDTO struct {
	GameType    string   `json:"game_type" example:"double_panna"`
	Prefix      string   `json:"prefix" example:"11"`
	Suggestions []string `json:"suggestions" example:"110,112,113"`
}

// NewWagerResponse renders w; the owning account is included only when
// withAccount is set.
func NewWagerResponse(w *domain.Wager, withAccount bool) WagerResponseDTO {
	resp := WagerResponseDTO{
		ID:         w.ID.String(),
		MarketID:   w.MarketID.String(),
		MarketName: w.MarketName,
		GameType:   string(w.GameType),
		Number:     w.Number,
		Amount:     w.Amount,
		Status:     string(w.Status),
		CreatedAt:  w.CreatedAt,
		SettledAt:  w.SettledAt,
	}
	if withAccount {
		resp.AccountID = w.AccountID.String()
	}
	return resp
}
