package eventpublisher

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/takeledger/internal/domain"
)

func TestNotifierDeliversQueuedEvents(t *testing.T) {
	pub := &stubPublisher{}
	n := newTestNotifier(pub, 8)

	n.OnMemberTakeChanged(context.Background(), "alice")
	n.OnMemberTakeChanged(context.Background(), "bob")

	runUntil(t, n, func() bool { return len(pub.events()) == 2 })

	got := pub.events()
	if got[0].MemberID != "alice" || got[1].MemberID != "bob" {
		t.Fatalf("unexpected delivery order: %+v", got)
	}
	if got[0].Type != domain.EventTypeMemberTakeChanged || got[0].ID == "" {
		t.Fatalf("event not populated: %+v", got[0])
	}
}

func TestNotifierCoalescesPendingMember(t *testing.T) {
	pub := &stubPublisher{}
	n := newTestNotifier(pub, 8)

	for i := 0; i < 5; i++ {
		n.OnMemberTakeChanged(context.Background(), "alice")
	}

	if len(n.queue) != 1 {
		t.Fatalf("expected one queued notification, got %d", len(n.queue))
	}
}

func TestNotifierRetriesFailedPublish(t *testing.T) {
	pub := &stubPublisher{failures: 2}
	n := newTestNotifier(pub, 8)

	n.OnMemberTakeChanged(context.Background(), "alice")

	runUntil(t, n, func() bool { return len(pub.events()) == 1 })

	if pub.attempts() != 3 {
		t.Fatalf("expected 3 attempts, got %d", pub.attempts())
	}
}

func TestNotifierDropsWhenQueueFull(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	dropped := 0
	n := NewNotifier(Config{
		Publisher: &stubPublisher{},
		Logger:    &logger,
		QueueSize: 1,
		OnDrop:    func() { dropped++ },
	})

	done := make(chan struct{})
	go func() {
		n.OnMemberTakeChanged(context.Background(), "alice")
		n.OnMemberTakeChanged(context.Background(), "bob")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OnMemberTakeChanged blocked on a full queue")
	}

	if !strings.Contains(buf.String(), "queue full") {
		t.Fatalf("expected drop to be logged, got %q", buf.String())
	}

	if dropped != 1 {
		t.Fatalf("expected 1 dropped notification, got %d", dropped)
	}
}

func TestStartStopsOnContextCancellation(t *testing.T) {
	pub := &stubPublisher{}
	n := newTestNotifier(pub, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- n.Start(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	n.OnMemberTakeChanged(context.Background(), "alice")
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop after cancel")
	}

	if len(pub.events()) != 1 {
		t.Fatalf("queued notification not drained, got %d", len(pub.events()))
	}
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(zerolog.New(&buf))

	err := p.Publish(context.Background(), domain.TakeChangedEvent{ID: "evt-1", Type: domain.EventTypeMemberTakeChanged, MemberID: "alice"})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"member_id":"alice"`) || !strings.Contains(out, `"event_id":"evt-1"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestULIDGeneratorUnique(t *testing.T) {
	g := ULIDGenerator{}
	a, b := g.Generate(), g.Generate()
	if a == b || len(a) != 26 {
		t.Fatalf("unexpected ids %q %q", a, b)
	}
}

func newTestNotifier(pub *stubPublisher, queueSize int) *Notifier {
	logger := zerolog.Nop()
	return NewNotifier(Config{
		Publisher:       pub,
		Logger:          &logger,
		QueueSize:       queueSize,
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		DrainTimeout:    time.Second,
	})
}

func runUntil(t *testing.T, n *Notifier, cond func() bool) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Start(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

type stubPublisher struct {
	mu        sync.Mutex
	published []domain.TakeChangedEvent
	failures  int
	calls     int
}

func (s *stubPublisher) Publish(ctx context.Context, event domain.TakeChangedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.failures > 0 {
		s.failures--
		return errors.New("broker unavailable")
	}
	s.published = append(s.published, event)
	return nil
}

func (s *stubPublisher) events() []domain.TakeChangedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TakeChangedEvent(nil), s.published...)
}

func (s *stubPublisher) attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
