package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Bang334/QuanAn-sub002/internal/events"
	"github.com/Bang334/QuanAn-sub002/internal/salary"
	"github.com/Bang334/QuanAn-sub002/internal/shared/apperror"
)

// retryable reports whether reconciliation could succeed on redelivery.
// Business rejections, a paid record or a missing or unapproved attendance,
// never will, so those messages get committed instead of redelivered.
func retryable(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= http.StatusInternalServerError
	}
	return true
}

// ConsumeAttendanceApproved reconciles payroll for every approved attendance.
// Reconciliation is idempotent, so replays after a failed commit are safe.
func ConsumeAttendanceApproved(
	ctx context.Context,
	reader *kafkago.Reader,
	salaryService salary.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_approved")
	log.Info("attendance approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance approved consumer stopped")
				return
			}
			log.Error("fetch attendance approved message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if _, err := salaryService.ReconcileAttendance(ctx, event.AttendanceID); err != nil {
			if retryable(err) {
				log.Error("reconcile salary from attendance failed",
					zap.String("attendance_id", event.AttendanceID),
					zap.String("employee_id", event.EmployeeID),
					zap.Error(err),
				)
				continue
			}
			log.Warn("attendance event rejected, committing to stop redelivery",
				zap.String("attendance_id", event.AttendanceID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance approved message failed", zap.Error(err))
			continue
		}

		log.Info("salary reconciled from attendance event",
			zap.String("attendance_id", event.AttendanceID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
