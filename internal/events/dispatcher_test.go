package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

func TestDispatcher_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	dispatcher := NewDispatcher(publisher, 1)

	accountID := uuid.New()
	at := time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)
	event := BalanceUpdated(accountID, 900, at)

	publisher.EXPECT().
		Publish(gomock.Any(), "wagerhall:balance.updated:"+accountID.String(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, channel string, payload []byte) error {
			var got map[string]any
			require.NoError(t, json.Unmarshal(payload, &got))
			assert.Equal(t, "balance.updated", got["type"])
			assert.Equal(t, float64(900), got["payload"].(map[string]any)["balance"])
			return nil
		})
	publisher.EXPECT().Close().Return(nil)

	dispatcher.Notify(event)
	assert.NoError(t, dispatcher.Close())
}

func TestDispatcher_PublishErrorIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	dispatcher := NewDispatcher(publisher, 1)

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	publisher.EXPECT().Close().Return(nil)

	dispatcher.Notify(BalanceUpdated(uuid.New(), 10, time.Now()))
	assert.NoError(t, dispatcher.Close())
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	pool := NewMockWorkerPoolI(ctrl)
	dispatcher := &Dispatcher{publisher: publisher, pool: pool}

	pool.EXPECT().TryAddTask(gomock.Any()).Return(ErrPoolFull)

	dispatcher.Notify(BalanceUpdated(uuid.New(), 10, time.Now()))
}

func TestDispatcher_NotifyAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	dispatcher := NewDispatcher(publisher, 1)

	publisher.EXPECT().Close().Return(nil)
	require.NoError(t, dispatcher.Close())

	assert.NotPanics(t, func() {
		dispatcher.Notify(BalanceUpdated(uuid.New(), 10, time.Now()))
		dispatcher.Notify(MarketSettled(&domain.Settlement{MarketID: uuid.New()}))
	})
}
