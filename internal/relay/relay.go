package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-nft-issuer/internal/adapter"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/messaging"
	"github.com/feral-file/ff-nft-issuer/internal/store"
	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// Config holds the configuration for the event relay
type Config struct {
	ConsumerName   string        // Key of the relay cursor
	BatchSize      int           // Journal entries published per batch
	PollInterval   time.Duration // Wait between polls once the journal is drained
	WorkerPoolSize int           // Tokens published concurrently per batch
	Backoff        BackoffConfig
}

// BackoffConfig holds the retry policy of a failed batch
type BackoffConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration // 0 retries until the context is cancelled
}

// Relay defines the interface for the event relay
type Relay interface {
	// Run publishes the event journal until ctx is cancelled or a batch cannot be published
	Run(ctx context.Context) error
	// RelayOnce publishes the next batch after the cursor and returns how many events were published
	RelayOnce(ctx context.Context) (int, error)
	// Close stops the worker pool
	Close()
}

// relay publishes journaled ownership events to the message broker in cursor order
type relay struct {
	store     store.Store
	publisher messaging.Publisher
	json      adapter.JSON
	clock     adapter.Clock
	config    Config
	pool      pond.Pool
}

// NewRelay creates a new event relay
func NewRelay(
	st store.Store,
	pub messaging.Publisher,
	cfg Config,
	json adapter.JSON,
	clock adapter.Clock,
) Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 1
	}

	return &relay{
		store:     st,
		publisher: pub,
		json:      json,
		clock:     clock,
		config:    cfg,
		pool:      pond.NewPool(cfg.WorkerPoolSize),
	}
}

// Run publishes the event journal until ctx is cancelled
func (r *relay) Run(ctx context.Context) error {
	cursor, err := r.store.GetRelayCursor(ctx, r.config.ConsumerName)
	if err != nil {
		return fmt.Errorf("failed to get relay cursor: %w", err)
	}
	logger.InfoCtx(ctx, "Starting event relay",
		zap.String("consumer", r.config.ConsumerName),
		zap.Uint64("cursor", cursor))

	for {
		published, err := r.RelayOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		// A full batch means more entries are likely pending
		if published >= r.config.BatchSize {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(r.config.PollInterval):
		}
	}
}

// RelayOnce publishes the next batch and advances the cursor once every event is acknowledged
func (r *relay) RelayOnce(ctx context.Context) (int, error) {
	cursor, err := r.store.GetRelayCursor(ctx, r.config.ConsumerName)
	if err != nil {
		return 0, fmt.Errorf("failed to get relay cursor: %w", err)
	}

	rows, err := r.store.GetEventsAfterCursor(ctx, cursor, r.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get events after cursor %d: %w", cursor, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	events := make([]*domain.Event, 0, len(rows))
	for i := range rows {
		event, err := r.decode(&rows[i])
		if err != nil {
			return 0, err
		}
		events = append(events, event)
	}

	if err := r.publishWithRetry(ctx, events); err != nil {
		return 0, err
	}

	last := rows[len(rows)-1].Cursor
	if err := r.store.SetRelayCursor(ctx, r.config.ConsumerName, last); err != nil {
		return 0, fmt.Errorf("failed to set relay cursor: %w", err)
	}

	logger.DebugCtx(ctx, "Relayed events",
		zap.Int("count", len(events)),
		zap.Uint64("from", rows[0].Cursor),
		zap.Uint64("to", last))

	return len(events), nil
}

// decode rebuilds the domain event of a journal entry and stamps its sequence
func (r *relay) decode(row *schema.EventJournal) (*domain.Event, error) {
	var event domain.Event
	if err := r.json.Unmarshal(row.Payload, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event %s: %w", row.EventID, err)
	}

	event.ID = row.EventID
	event.Sequence = row.Cursor
	if !domain.IsValidEventType(event.Type) {
		event.Type = row.EventType
	}

	return &event, nil
}

// publishWithRetry publishes a batch with exponential backoff.
// A retry publishes the whole batch again; the broker drops the duplicates by message id.
func (r *relay) publishWithRetry(ctx context.Context, events []*domain.Event) error {
	b := backoff.NewExponentialBackOff()
	if r.config.Backoff.InitialInterval > 0 {
		b.InitialInterval = r.config.Backoff.InitialInterval
	}
	if r.config.Backoff.MaxInterval > 0 {
		b.MaxInterval = r.config.Backoff.MaxInterval
	}
	b.MaxElapsedTime = r.config.Backoff.MaxElapsedTime

	operation := func() error {
		return r.publishBatch(ctx, events)
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Publishing events failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to publish events after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

// publishBatch publishes a batch on the worker pool. The batch is cut at every event
// without a token (approval_for_all), which is published alone once everything before it
// is acknowledged. Between those barriers each token gets one lane, published in cursor order.
func (r *relay) publishBatch(ctx context.Context, events []*domain.Event) error {
	for _, segment := range segments(events) {
		group := r.pool.NewGroup()
		for _, lane := range lanes(segment) {
			lane := lane
			group.SubmitErr(func() error {
				for _, event := range lane {
					if err := r.publisher.PublishEvent(ctx, event); err != nil {
						return err
					}
				}
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// segments splits events at every event without a token, which forms a segment of its own
func segments(events []*domain.Event) [][]*domain.Event {
	var out [][]*domain.Event
	start := 0
	for i, event := range events {
		if event.TokenID != nil {
			continue
		}
		if i > start {
			out = append(out, events[start:i])
		}
		out = append(out, events[i:i+1])
		start = i + 1
	}
	if start < len(events) {
		out = append(out, events[start:])
	}

	return out
}

// lanes groups events by token id, keeping their order inside each lane
func lanes(events []*domain.Event) [][]*domain.Event {
	var out [][]*domain.Event
	index := make(map[uint64]int)
	for _, event := range events {
		if event.TokenID == nil {
			out = append(out, []*domain.Event{event})
			continue
		}

		i, ok := index[*event.TokenID]
		if !ok {
			i = len(out)
			index[*event.TokenID] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], event)
	}

	return out
}

// Close stops the worker pool
func (r *relay) Close() {
	r.pool.StopAndWait()
}
