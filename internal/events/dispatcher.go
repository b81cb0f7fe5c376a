package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// Dispatcher publishes events asynchronously so request handlers never wait
// on the event bus. Delivery is best effort.
type Dispatcher struct {
	publisher Publisher
	pool      WorkerPoolI
}

func NewDispatcher(publisher Publisher, workers int) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		pool:      NewWorkerPool(workers, workers*64),
	}
}

func (d *Dispatcher) Notify(event Event) {
	err := d.pool.TryAddTask(func() error {
		return d.publish(event)
	})
	if err != nil {
		zap.L().Warn("event dropped",
			zap.String("type", string(event.Type)),
			zap.String("key", event.Key),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) publish(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	return d.publisher.Publish(ctx, event.Channel(), payload)
}

// Close drains queued events and closes the publisher.
func (d *Dispatcher) Close() error {
	d.pool.Close()
	return d.publisher.Close()
}
