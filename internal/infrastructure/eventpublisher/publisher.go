// Package eventpublisher delivers take-change notifications outside the
// request path.
package eventpublisher

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

// Publisher defines the interface for publishing events to external systems.
type Publisher interface {
	Publish(ctx context.Context, event domain.TakeChangedEvent) error
}

// Config for Notifier.
type Config struct {
	Publisher       Publisher
	Logger          *zerolog.Logger
	IDGenerator     usecase.IDGenerator
	QueueSize       int           // Pending notifications before new ones are dropped
	MaxRetries      uint64        // Delivery attempts after the first
	InitialInterval time.Duration // First retry delay
	MaxInterval     time.Duration
	DrainTimeout    time.Duration // How long Start keeps delivering after cancellation
	OnDrop          func()        // optional, called for every dropped notification
}

// Notifier implements usecase.TakeChangeNotifier. Notifications are queued and
// delivered by the worker started with Start; a member with a notification
// already queued is not queued twice.
type Notifier struct {
	publisher       Publisher
	logger          zerolog.Logger
	ids             usecase.IDGenerator
	queue           chan domain.TakeChangedEvent
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
	drainTimeout    time.Duration
	onDrop          func()

	mu      sync.Mutex
	pending map[string]bool
}

// NewNotifier creates a new Notifier.
func NewNotifier(cfg Config) *Notifier {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 5
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 100 * time.Millisecond
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 5 * time.Second
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = ULIDGenerator{}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "take_notifier").Logger()
	}

	return &Notifier{
		publisher:       cfg.Publisher,
		logger:          logger,
		ids:             cfg.IDGenerator,
		queue:           make(chan domain.TakeChangedEvent, cfg.QueueSize),
		maxRetries:      cfg.MaxRetries,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		drainTimeout:    cfg.DrainTimeout,
		onDrop:          cfg.OnDrop,
		pending:         make(map[string]bool),
	}
}

// OnMemberTakeChanged queues a notification for memberID. It never blocks;
// when the queue is full the notification is dropped and logged.
func (n *Notifier) OnMemberTakeChanged(ctx context.Context, memberID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pending[memberID] {
		return
	}

	event := domain.TakeChangedEvent{
		ID:         n.ids.Generate(),
		Type:       domain.EventTypeMemberTakeChanged,
		MemberID:   memberID,
		OccurredAt: time.Now().UTC(),
	}

	select {
	case n.queue <- event:
		n.pending[memberID] = true
	default:
		n.logger.Error().
			Str("member_id", memberID).
			Msg("take notification queue full, dropping notification")
		if n.onDrop != nil {
			n.onDrop()
		}
	}
}

// Start runs the delivery worker until ctx is cancelled, then keeps
// delivering what is queued for up to the drain timeout.
func (n *Notifier) Start(ctx context.Context) error {
	n.logger.Info().Int("queue_size", cap(n.queue)).Msg("take notifier started")

	for {
		select {
		case <-ctx.Done():
			n.drain()
			n.logger.Info().Msg("take notifier shutting down")
			return ctx.Err()
		case event := <-n.queue:
			n.deliver(ctx, event)
		}
	}
}

func (n *Notifier) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), n.drainTimeout)
	defer cancel()

	for {
		select {
		case event := <-n.queue:
			n.deliver(ctx, event)
		default:
			return
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, event domain.TakeChangedEvent) {
	// a change after this point must be queued again
	n.mu.Lock()
	delete(n.pending, event.MemberID)
	n.mu.Unlock()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = n.initialInterval
	b.MaxInterval = n.maxInterval

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		return n.publisher.Publish(ctx, event)
	}, backoff.WithContext(backoff.WithMaxRetries(b, n.maxRetries), ctx))
	if err != nil {
		n.logger.Error().
			Err(err).
			Str("event_id", event.ID).
			Str("member_id", event.MemberID).
			Int("attempts", attempt).
			Msg("failed to publish take notification")
		return
	}

	n.logger.Debug().
		Str("event_id", event.ID).
		Str("member_id", event.MemberID).
		Int("attempts", attempt).
		Msg("take notification published")
}

// ULIDGenerator generates ULID event ids.
type ULIDGenerator struct{}

// Generate returns a new ULID string.
func (ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// LogPublisher is a publisher that only logs events.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, event domain.TakeChangedEvent) error {
	p.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("member_id", event.MemberID).
		Time("occurred_at", event.OccurredAt).
		Msg("take changed")

	return nil
}
