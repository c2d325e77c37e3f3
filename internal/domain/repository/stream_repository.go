package repository

import (
	"context"

	"github.com/placement-microservice/internal/domain"
)

// StreamRepository is the interface to Redis Streams used by the inquiry
// notification pipeline.
type StreamRepository interface {
	// CreateConsumerGroup creates a consumer group for the stream.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages without blocking.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a single processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// AckMessages acknowledges a batch of processed messages.
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// PublishToStream publishes a JSON-serialised message to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
