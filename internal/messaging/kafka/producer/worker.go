package producer

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka"
)

// outboxBatchSize caps one drain cycle. Attendance approvals arrive in
// bursts at shift end, so a cycle may not clear the table; the next tick
// picks up the remainder.
const outboxBatchSize = 50

// ProcessOutboxEvents polls the outbox table and publishes publishable rows
// to Kafka. Rows that fail to publish are marked failed and retried on a
// later cycle once their backoff elapses.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := drainOutbox(ctx, repo, writer, log); err != nil {
				log.Error("outbox drain cycle failed", zap.Error(err))
			}
		}
	}
}

func drainOutbox(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
) error {
	batch, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}

	var sent, failed int
	for _, event := range batch {
		if err := publishEvent(ctx, writer, event); err != nil {
			failed++
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// The publish went through; redelivery after the next
			// ListPending is absorbed by consumer idempotency.
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	logger.Info("outbox drain cycle finished",
		zap.Int("picked_up", len(batch)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)

	return nil
}
