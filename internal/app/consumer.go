package app

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Bang334/QuanAn-sub002/internal/employee"
	"github.com/Bang334/QuanAn-sub002/internal/events"
	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka/consumer"
	"github.com/Bang334/QuanAn-sub002/internal/salary"
	"github.com/Bang334/QuanAn-sub002/internal/shared/connection"
	"github.com/Bang334/QuanAn-sub002/internal/wagerate"
)

// RunConsumer reads attendance approval events and reconciles payroll.
func RunConsumer(ctx context.Context, logger *zap.Logger) error {
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

	employeeRepo := employee.NewRepository(gormDB)
	wageRateService := wagerate.NewService(wagerate.NewRepository(gormDB), wagerate.ConfigFromEnv(), logger)
	salaryService := salary.NewService(sqlDB, salary.NewRepository(gormDB), employeeRepo, wageRateService, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{envOr("KAFKA_BROKER", "localhost:9092")},
		GroupID: envOr("KAFKA_CONSUMER_GROUP", "salary-reconciler"),
		Topic:   events.AttendanceApprovedTopic,
	})
	defer reader.Close()

	consumer.ConsumeAttendanceApproved(ctx, reader, salaryService, logger)
	return nil
}
