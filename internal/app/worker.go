package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka"
	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka/producer"
	"github.com/Bang334/QuanAn-sub002/internal/shared/connection"
)

// RunWorker publishes pending outbox rows to Kafka until ctx is done.
func RunWorker(ctx context.Context, logger *zap.Logger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "postgres"),
		envOr("DB_NAME", "quanan"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	writer, err := connection.ConnectKafkaWithRetry(envOr("KAFKA_BROKER", "localhost:9092"), 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	producer.ProcessOutboxEvents(ctx, outboxRepo, writer, logger, 3*time.Second)
	return nil
}
