package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	scheduleerrors "github.com/Bang334/QuanAn-sub002/internal/schedule/errors"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, actorID string, req AssignShiftRequest) (AssignmentResponse, error)
	GetAll(ctx context.Context, filter ListAssignmentsFilter) ([]AssignmentResponse, error)
	ShiftFor(ctx context.Context, employeeID string, date time.Time) string
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Assign(ctx context.Context, actorID string, req AssignShiftRequest) (AssignmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return AssignmentResponse{}, scheduleerrors.ErrInvalidWorkDate
	}

	if _, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, workDate); err == nil {
		return AssignmentResponse{}, scheduleerrors.ErrAssignmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AssignmentResponse{}, err
	}

	a := &ShiftAssignment{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		WorkDate:   workDate,
		Shift:      req.Shift,
		Note:       req.Note,
		CreatedBy:  uuid.MustParse(actorID),
	}

	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("assign shift persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("shift assigned",
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
		zap.String("shift", req.Shift),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter ListAssignmentsFilter) ([]AssignmentResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]AssignmentResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

// ShiftFor resolves the planned shift for an employee on a date, falling back
// to DefaultShift when nothing was scheduled. Used by attendance and payroll.
func (s *service) ShiftFor(ctx context.Context, employeeID string, date time.Time) string {
	a, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("shift lookup failed, using default",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
		return DefaultShift
	}
	return a.Shift
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(a ShiftAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		WorkDate:   a.WorkDate.Format("2006-01-02"),
		Shift:      a.Shift,
		Note:       a.Note,
		CreatedBy:  a.CreatedBy.String(),
	}
}
