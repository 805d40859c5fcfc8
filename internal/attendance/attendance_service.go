package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	attendanceerrors "github.com/Bang334/QuanAn-sub002/internal/attendance/errors"
	"github.com/Bang334/QuanAn-sub002/internal/events"
	"github.com/Bang334/QuanAn-sub002/internal/messaging/kafka"
	"github.com/Bang334/QuanAn-sub002/internal/schedule"
	"github.com/Bang334/QuanAn-sub002/internal/shared/contextutil"
)

// Scheduled shift start hours, used for late detection.
var shiftStartHour = map[string]int{
	schedule.ShiftMorning: 7,
	schedule.ShiftEvening: 15,
	schedule.ShiftNight:   23,
}

const lateGraceMinutes = 15

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool, filter ListAttendanceFilter) ([]AttendanceResponse, error)
	Approve(ctx context.Context, actorID, id string) (AttendanceResponse, error)
	Reject(ctx context.Context, actorID, id string, req RejectRequest) (AttendanceResponse, error)
	AdjustHours(ctx context.Context, actorID, id string, req AdjustHoursRequest) (AttendanceResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	schedule schedule.Service
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, scheduleService schedule.Service) Service {
	return NewServiceWithOutbox(db, repo, scheduleService, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	scheduleService schedule.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		schedule: scheduleService,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	shift := s.schedule.ShiftFor(ctx, employeeID, today)

	late := false
	if startHour, ok := shiftStartHour[shift]; ok {
		shiftStart := time.Date(now.Year(), now.Month(), now.Day(), startHour, 0, 0, 0, time.UTC)
		late = now.After(shiftStart.Add(lateGraceMinutes * time.Minute))
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		WorkDate:   today,
		Shift:      shift,
		ClockIn:    now,
		Late:       late,
		Status:     StatusPending,
		Notes:      req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("clock in persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock in",
		zap.String("employee_id", employeeID),
		zap.String("shift", shift),
		zap.Bool("late", late),
	)

	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	row.HoursWorked = roundHours(now.Sub(row.ClockIn).Hours())
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock out",
		zap.String("employee_id", employeeID),
		zap.Float64("hours_worked", row.HoursWorked),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool, filter ListAttendanceFilter) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx, filter)
	} else {
		rows, err = s.repo.FindAllByEmployee(ctx, actorID, filter)
	}
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// Approve transitions a pending, clocked-out attendance to APPROVED and queues
// the payroll reconciliation event in the same transaction.
func (s *service) Approve(ctx context.Context, actorID, id string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.Status != StatusPending {
		return AttendanceResponse{}, attendanceerrors.ErrNotPending
	}
	if row.ClockOut == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotClockedOut
	}

	now := time.Now().UTC()
	approver := uuid.MustParse(actorID)
	row.Status = StatusApproved
	row.ApprovedBy = &approver
	row.ApprovedAt = &now

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := s.queueApprovedEvent(ctx, tx, rid, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance approved",
		zap.String("request_id", rid),
		zap.String("attendance_id", id),
		zap.String("employee_id", row.EmployeeID.String()),
	)

	return mapToResponse(*row), nil
}

func (s *service) Reject(ctx context.Context, actorID, id string, req RejectRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.Status != StatusPending {
		return AttendanceResponse{}, attendanceerrors.ErrNotPending
	}

	now := time.Now().UTC()
	approver := uuid.MustParse(actorID)
	row.Status = StatusRejected
	row.ApprovedBy = &approver
	row.ApprovedAt = &now
	if req.Reason != nil {
		row.Notes = req.Reason
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance rejected",
		zap.String("attendance_id", id),
		zap.String("employee_id", row.EmployeeID.String()),
	)

	return mapToResponse(*row), nil
}

// AdjustHours lets an admin correct a derived hours value. If the record was
// already approved, payroll is re-reconciled through the same event path.
func (s *service) AdjustHours(ctx context.Context, actorID, id string, req AdjustHoursRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	row.HoursWorked = roundHours(req.HoursWorked)

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	if row.Status == StatusApproved {
		if err := s.queueApprovedEvent(ctx, tx, rid, row); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance hours adjusted",
		zap.String("attendance_id", id),
		zap.String("actor_id", actorID),
		zap.Float64("hours_worked", row.HoursWorked),
	)

	return mapToResponse(*row), nil
}

func (s *service) queueApprovedEvent(ctx context.Context, tx *sql.Tx, rid string, row *Attendance) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AttendanceApprovedEvent{
		EventType:    "attendance_approved",
		RequestID:    rid,
		AttendanceID: row.ID.String(),
		EmployeeID:   row.EmployeeID.String(),
		WorkDate:     row.WorkDate.Format("2006-01-02"),
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.AttendanceApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue attendance approved event failed",
			zap.String("attendance_id", row.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		WorkDate:    a.WorkDate.Format("2006-01-02"),
		Shift:       a.Shift,
		ClockIn:     a.ClockIn.Format(time.RFC3339),
		HoursWorked: a.HoursWorked,
		Late:        a.Late,
		Status:      a.Status,
		Notes:       a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if a.ApprovedBy != nil {
		v := a.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if a.ApprovedAt != nil {
		v := a.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
