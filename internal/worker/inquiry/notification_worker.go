package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/placement-microservice/internal/domain"
	"github.com/placement-microservice/internal/domain/repository"
	"github.com/placement-microservice/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

// NotificationWorker consumes submitted inquiries from the stream and hands
// them to the configured NotificationSender.
type NotificationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	sender       repository.NotificationSender
	consumerName string
	maxRetries   int
}

// NewNotificationWorker creates a new NotificationWorker.
func NewNotificationWorker(
	streamRepo repository.StreamRepository,
	sender repository.NotificationSender,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *NotificationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &NotificationWorker{
		BaseWorker:   worker.NewBaseWorker("inquiry-notification", consumerGroup, logger),
		streamRepo:   streamRepo,
		sender:       sender,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until Stop or context cancellation.
func (w *NotificationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting NotificationWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamInquirySubmitted, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and handles one batch of submitted inquiries. It
// returns the number of processed messages.
func (w *NotificationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamInquirySubmitted,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing inquiry batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		var event domain.InquiryEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			// Ack malformed messages so they do not block the group.
			logger.Warn("Failed to parse inquiry event, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.handleEvent(ctx, event); err != nil {
			logger.Error("Failed to handle inquiry event",
				zap.String("message_id", msg.ID),
				zap.String("inquiry_id", event.InquiryID.String()),
				zap.Error(err))
			// Left unacked for redelivery to this group.
			continue
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamInquirySubmitted, w.ConsumerGroup(), ackIDs); err != nil {
		return len(ackIDs), fmt.Errorf("failed to ack messages: %w", err)
	}

	return len(ackIDs), nil
}

// handleEvent delivers one inquiry and records the outcome on the notified
// stream.
func (w *NotificationWorker) handleEvent(ctx context.Context, event domain.InquiryEvent) error {
	logger := w.Logger()

	sendErr := w.sender.Send(ctx, event)

	notified := domain.InquiryNotifiedEvent{
		InquiryID:  event.InquiryID,
		FacilityID: event.FacilityID,
	}
	if sendErr != nil {
		notified.Error = sendErr.Error()
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamInquiryNotified, notified); err != nil {
		logger.Warn("Failed to publish notified event",
			zap.String("inquiry_id", event.InquiryID.String()),
			zap.Error(err))
	}

	if sendErr != nil {
		return fmt.Errorf("notification send: %w", sendErr)
	}

	logger.Debug("Inquiry notified",
		zap.String("inquiry_id", event.InquiryID.String()),
		zap.Int("facility_id", event.FacilityID))

	return nil
}
