// Package events carries post-commit notifications (balance changes, market
// state changes) to subscribers over a pub/sub channel.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

type Type string

const (
	TypeBalanceUpdated Type = "balance.updated"
	TypeMarketUpdated  Type = "market.updated"
	TypeMarketSettled  Type = "market.settled"
)

const channelPrefix = "wagerhall:"

type Event struct {
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Channel is the pub/sub channel the event is published on, e.g.
// "wagerhall:balance.updated:<account id>".
func (e Event) Channel() string {
	return channelPrefix + string(e.Type) + ":" + e.Key
}

type BalancePayload struct {
	AccountID uuid.UUID `json:"account_id"`
	Balance   int64     `json:"balance"`
}

type MarketPayload struct {
	MarketID           uuid.UUID `json:"market_id"`
	Action             string    `json:"action"`
	IsActive           bool      `json:"is_active"`
	OpenTime           string    `json:"open_time"`
	CloseTime          string    `json:"close_time"`
	TodayWinningNumber *string   `json:"today_winning_number"`
}

type SettlementPayload struct {
	MarketID      uuid.UUID `json:"market_id"`
	WinningNumber string    `json:"winning_number"`
	Won           int64     `json:"won"`
	Lost          int64     `json:"lost"`
}

func BalanceUpdated(accountID uuid.UUID, balance int64, at time.Time) Event {
	return Event{
		Type:       TypeBalanceUpdated,
		Key:        accountID.String(),
		Payload:    BalancePayload{AccountID: accountID, Balance: balance},
		OccurredAt: at,
	}
}

func MarketUpdated(market *domain.Market, action string, at time.Time) Event {
	return Event{
		Type: TypeMarketUpdated,
		Key:  market.ID.String(),
		Payload: MarketPayload{
			MarketID:           market.ID,
			Action:             action,
			IsActive:           market.IsActive,
			OpenTime:           market.OpenTime.String(),
			CloseTime:          market.CloseTime.String(),
			TodayWinningNumber: market.TodayWinningNumber,
		},
		OccurredAt: at,
	}
}

func MarketSettled(settlement *domain.Settlement) Event {
	return Event{
		Type: TypeMarketSettled,
		Key:  settlement.MarketID.String(),
		Payload: SettlementPayload{
			MarketID:      settlement.MarketID,
			WinningNumber: settlement.WinningNumber,
			Won:           settlement.Won,
			Lost:          settlement.Lost,
		},
		OccurredAt: settlement.SettledAt,
	}
}
