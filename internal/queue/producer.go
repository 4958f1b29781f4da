package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ConversationIngestedEvent announces the first successful ingestion of
// a natural key. Replays never publish.
type ConversationIngestedEvent struct {
	ConversationID string
	Provider       string
	ExternalID     string
}

type Producer interface {
	Publish(ctx context.Context, event ConversationIngestedEvent) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event ConversationIngestedEvent) error {
	fields := map[string]any{
		"conversation_id": event.ConversationID,
		"provider":        event.Provider,
		"external_id":     event.ExternalID,
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publish conversation event: %w", err)
	}

	p.logger.InfoContext(ctx, "published conversation ingested event", "conversation_id", event.ConversationID, "provider", event.Provider, "external_id", event.ExternalID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

// NewNopProducer returns a producer that drops every event. Used when no
// event stream is configured.
func NewNopProducer() Producer {
	return nopProducer{}
}

type nopProducer struct{}

func (nopProducer) Publish(context.Context, ConversationIngestedEvent) error { return nil }

func (nopProducer) Close() error { return nil }
