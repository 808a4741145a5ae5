package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/takeledger/internal/domain"
)

// DefaultTakeEventsChannel is the pub/sub channel take-change events go to.
const DefaultTakeEventsChannel = "takeledger:events:take_changed"

// EventPublisher publishes take-change events over Redis pub/sub.
type EventPublisher struct {
	client  *redis.Client
	channel string
}

// NewEventPublisher creates an EventPublisher. An empty channel uses
// DefaultTakeEventsChannel.
func NewEventPublisher(client *redis.Client, channel string) *EventPublisher {
	if channel == "" {
		channel = DefaultTakeEventsChannel
	}
	return &EventPublisher{client: client, channel: channel}
}

// Publish sends the event as JSON.
func (p *EventPublisher) Publish(ctx context.Context, event domain.TakeChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}

	return p.client.Publish(ctx, p.channel, payload).Err()
}
