package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/iho/takeledger/internal/domain"
)

func TestEventPublisherPublishes(t *testing.T) {
	client, _ := startLedgerRedis(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, DefaultTakeEventsChannel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	event := domain.TakeChangedEvent{
		ID:         "01HZX",
		Type:       domain.EventTypeMemberTakeChanged,
		MemberID:   "alice",
		OccurredAt: time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC),
	}
	if err := NewEventPublisher(client, "").Publish(ctx, event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-sub.Channel():
		var got domain.TakeChangedEvent
		if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
			t.Fatalf("bad payload %q: %v", msg.Payload, err)
		}
		if got.MemberID != "alice" || got.Type != domain.EventTypeMemberTakeChanged {
			t.Fatalf("unexpected event %+v", got)
		}
	case <-ctx.Done():
		t.Fatal("no message received")
	}
}
