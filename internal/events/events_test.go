package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

func TestEventConstructors(t *testing.T) {
	marketID := uuid.New()
	at := time.Date(2026, 10, 18, 21, 5, 0, 0, time.UTC)
	winning := "250"

	market := &domain.Market{
		ID:                 marketID,
		OpenTime:           domain.NewTimeOfDay(9, 0, 0),
		CloseTime:          domain.NewTimeOfDay(21, 0, 0),
		TodayWinningNumber: &winning,
	}

	updated := MarketUpdated(market, "toggle_status", at)
	assert.Equal(t, TypeMarketUpdated, updated.Type)
	assert.Equal(t, "wagerhall:market.updated:"+marketID.String(), updated.Channel())
	assert.Equal(t, MarketPayload{
		MarketID:           marketID,
		Action:             "toggle_status",
		OpenTime:           "09:00:00",
		CloseTime:          "21:00:00",
		TodayWinningNumber: &winning,
	}, updated.Payload)

	settled := MarketSettled(&domain.Settlement{MarketID: marketID, WinningNumber: "250", SettledAt: at, Won: 2, Lost: 5})
	assert.Equal(t, TypeMarketSettled, settled.Type)
	assert.Equal(t, at, settled.OccurredAt)
	assert.Equal(t, SettlementPayload{MarketID: marketID, WinningNumber: "250", Won: 2, Lost: 5}, settled.Payload)
}

func TestNewRedisPublisher_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	publisher, err := NewRedisPublisher(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
	assert.Nil(t, publisher)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "c", []byte("x")))
	assert.NoError(t, p.Close())
}
