// Package events publishes user directory events to a Redis stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/userdir/userdir/internal/metrics"
	"github.com/userdir/userdir/internal/model"
)

const (
	// StreamKey is the Redis stream for user events.
	StreamKey = "stream:user_events"

	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 10000

	// PublishTimeout bounds a single publish call.
	PublishTimeout = 500 * time.Millisecond

	// TypeUserCreated is emitted after a user is added to the directory.
	TypeUserCreated = "user.created"
)

// UserEvent is the payload stored under the "payload" field of each entry.
type UserEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher announces changes to the directory.
type Publisher interface {
	PublishUserCreated(ctx context.Context, user model.User) error
}

// NoopPublisher drops every event. Used when no Redis is configured.
type NoopPublisher struct{}

// NewNoop returns a Publisher that discards all events.
func NewNoop() Publisher {
	return NoopPublisher{}
}

// PublishUserCreated is a no-op.
func (NoopPublisher) PublishUserCreated(ctx context.Context, user model.User) error {
	return nil
}

// RedisPublisher appends events to a Redis stream.
type RedisPublisher struct {
	redis   *redis.Client
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewRedisPublisher creates a publisher writing to StreamKey.
func NewRedisPublisher(client *redis.Client, logger *slog.Logger, recorder metrics.Recorder) *RedisPublisher {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &RedisPublisher{
		redis:   client,
		logger:  logger.With("component", "events.publisher"),
		metrics: recorder,
		now:     time.Now,
	}
}

// PublishUserCreated writes a user.created entry.
func (p *RedisPublisher) PublishUserCreated(ctx context.Context, user model.User) error {
	event := UserEvent{
		EventID:    ulid.Make().String(),
		Type:       TypeUserCreated,
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: p.now().UTC(),
	}

	streamID, err := p.publish(ctx, event)
	if err != nil {
		p.metrics.IncEventPublished(metrics.EventDropped)
		return err
	}

	p.logger.Debug("user event published",
		"event_id", event.EventID,
		"user_id", user.ID,
		"stream_id", streamID,
	)
	p.metrics.IncEventPublished(metrics.EventSuccess)
	return nil
}

func (p *RedisPublisher) publish(ctx context.Context, event UserEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	result, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"type":    event.Type,
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return result, nil
}
