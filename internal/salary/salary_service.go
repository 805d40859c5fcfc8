package salary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/attendance"
	"github.com/Bang334/QuanAn-sub002/internal/employee"
	salaryerrors "github.com/Bang334/QuanAn-sub002/internal/salary/errors"
	"github.com/Bang334/QuanAn-sub002/internal/schedule"
	"github.com/Bang334/QuanAn-sub002/internal/wagerate"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	// Upsert sets bonus and deduction on the employee's record for the
	// period, creating it when absent, and recomputes the totals.
	Upsert(ctx context.Context, req UpsertSalaryRequest) (SalaryResponse, error)
	// Recompute regenerates every line item of a record from the month's
	// approved attendance and rewrites the stored totals.
	Recompute(ctx context.Context, recordID string) (SalaryResponse, error)
	// ReconcileAttendance folds one approved attendance into its month's
	// record without touching the other line items. Safe to repeat.
	ReconcileAttendance(ctx context.Context, attendanceID string) (SalaryResponse, error)
	// BatchGenerate creates one pending record per active payroll-eligible
	// employee that lacks one for the period. Totals stay zero until a
	// recompute runs.
	BatchGenerate(ctx context.Context, req BatchGenerateRequest) (BatchGenerateResponse, error)
	MarkPaid(ctx context.Context, recordID string) (SalaryResponse, error)
	Reopen(ctx context.Context, recordID string) (SalaryResponse, error)
	GetAll(ctx context.Context, filter ListSalaryFilter) ([]SalaryResponse, error)
	GetByID(ctx context.Context, recordID string) (SalaryResponse, error)
	GetDailyDetails(ctx context.Context, recordID string) ([]DailyDetailResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	rates        wagerate.Service
	locks        sync.Map
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	rateService wagerate.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		rates:        rateService,
		logger:       l,
	}
}

// periodLock serializes in-process recomputes of one employee's month.
// The surrounding DB transaction covers cross-process races.
func (s *service) periodLock(employeeID string, month, year int) *sync.Mutex {
	key := fmt.Sprintf("%s:%d:%d", employeeID, year, month)
	mu, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func dailyAmount(hours float64, hourlyRate int64) int64 {
	return int64(math.Round(hours * float64(hourlyRate)))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *service) Upsert(ctx context.Context, req UpsertSalaryRequest) (SalaryResponse, error) {
	mu := s.periodLock(req.EmployeeID, req.Month, req.Year)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := s.findOrCreateRecord(ctx, qtx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return SalaryResponse{}, err
	}
	if record.Status == StatusPaid {
		return SalaryResponse{}, salaryerrors.ErrRecordPaidRecomputeForbidden
	}

	if req.Bonus != nil {
		record.Bonus = *req.Bonus
	}
	if req.Deduction != nil {
		record.Deduction = *req.Deduction
	}

	if err := s.recomputeRecord(ctx, qtx, record); err != nil {
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("salary upserted",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int64("bonus", record.Bonus),
		zap.Int64("deduction", record.Deduction),
	)

	return mapToResponse(*record), nil
}

func (s *service) Recompute(ctx context.Context, recordID string) (SalaryResponse, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}

	mu := s.periodLock(record.EmployeeID.String(), record.Month, record.Year)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Re-read inside the lock so a concurrent mark-paid cannot slip past
	// the status check.
	record, err = qtx.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	if record.Status == StatusPaid {
		return SalaryResponse{}, salaryerrors.ErrRecordPaidRecomputeForbidden
	}

	if err := s.recomputeRecord(ctx, qtx, record); err != nil {
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("salary recomputed",
		zap.String("salary_record_id", recordID),
		zap.Float64("total_hours", record.TotalHours),
		zap.Int64("total_hourly_pay", record.TotalHourlyPay),
		zap.Int("working_days", record.WorkingDays),
	)

	return mapToResponse(*record), nil
}

// recomputeRecord rebuilds every line item from the month's approved
// attendance. Caller holds the period lock and the transaction.
func (s *service) recomputeRecord(ctx context.Context, qtx Repository, record *SalaryRecord) error {
	if err := qtx.DeleteLineItemsByRecord(ctx, record.ID.String()); err != nil {
		return err
	}

	role, err := s.employeeRepo.GetRoleByID(ctx, record.EmployeeID.String())
	if err != nil {
		return err
	}

	rows, err := qtx.ListApprovedAttendance(ctx, record.EmployeeID.String(), record.Month, record.Year)
	if err != nil {
		return err
	}

	var (
		totalHours float64
		totalPay   int64
		workDays   = map[string]struct{}{}
	)

	for i := range rows {
		a := rows[i]
		if a.HoursWorked <= 0 {
			s.logger.Warn("skipping attendance with non-positive hours",
				zap.String("attendance_id", a.ID.String()),
				zap.Float64("hours_worked", a.HoursWorked),
			)
			continue
		}

		item, err := s.buildLineItem(ctx, record, role, &a)
		if err != nil {
			return err
		}
		if err := qtx.CreateLineItem(ctx, item); err != nil {
			return err
		}

		totalHours += item.HoursWorked
		totalPay += item.Amount
		workDays[item.WorkDate.Format("2006-01-02")] = struct{}{}
	}

	if totalHours == 0 && len(workDays) == 0 {
		if err := qtx.CreateLineItem(ctx, placeholderLineItem(record)); err != nil {
			return err
		}
	}

	record.TotalHours = totalHours
	record.TotalHourlyPay = totalPay
	record.WorkingDays = len(workDays)

	return qtx.Update(ctx, record)
}

func (s *service) buildLineItem(ctx context.Context, record *SalaryRecord, role string, a *attendance.Attendance) (*SalaryLineItem, error) {
	shift := a.Shift
	if shift == "" {
		shift = schedule.DefaultShift
	}

	rate, err := s.rates.Resolve(ctx, role, shift, a.WorkDate)
	if err != nil {
		return nil, err
	}

	attendanceID := a.ID
	rateID := rate.ID
	return &SalaryLineItem{
		ID:             uuid.New(),
		SalaryRecordID: record.ID,
		AttendanceID:   &attendanceID,
		WorkDate:       a.WorkDate,
		Shift:          shift,
		WageRateID:     &rateID,
		HoursWorked:    a.HoursWorked,
		Amount:         dailyAmount(a.HoursWorked, rate.HourlyRate),
	}, nil
}

// placeholderLineItem keeps a month with zero approved attendance visible
// in the daily breakdown.
func placeholderLineItem(record *SalaryRecord) *SalaryLineItem {
	return &SalaryLineItem{
		ID:             uuid.New(),
		SalaryRecordID: record.ID,
		WorkDate:       time.Date(record.Year, time.Month(record.Month), 1, 0, 0, 0, 0, time.UTC),
		Shift:          schedule.DefaultShift,
		HoursWorked:    0,
		Amount:         0,
	}
}

func (s *service) ReconcileAttendance(ctx context.Context, attendanceID string) (SalaryResponse, error) {
	a, err := s.repo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrAttendanceNotFound
		}
		return SalaryResponse{}, err
	}
	if a.Status != attendance.StatusApproved {
		return SalaryResponse{}, salaryerrors.ErrAttendanceNotApproved
	}

	employeeID := a.EmployeeID.String()
	month := int(a.WorkDate.Month())
	year := a.WorkDate.Year()

	mu := s.periodLock(employeeID, month, year)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := s.findOrCreateRecord(ctx, qtx, employeeID, month, year)
	if err != nil {
		return SalaryResponse{}, err
	}
	if record.Status == StatusPaid {
		return SalaryResponse{}, salaryerrors.ErrRecordPaidRecomputeForbidden
	}

	// Replace only this attendance's contribution. The placeholder goes
	// away as soon as a real line item exists.
	if err := qtx.DeleteLineItemByAttendance(ctx, record.ID.String(), attendanceID); err != nil {
		return SalaryResponse{}, err
	}

	if a.HoursWorked > 0 {
		role, err := s.employeeRepo.GetRoleByID(ctx, employeeID)
		if err != nil {
			return SalaryResponse{}, err
		}
		item, err := s.buildLineItem(ctx, record, role, a)
		if err != nil {
			return SalaryResponse{}, err
		}
		if err := qtx.DeletePlaceholderLineItems(ctx, record.ID.String()); err != nil {
			return SalaryResponse{}, err
		}
		if err := qtx.CreateLineItem(ctx, item); err != nil {
			return SalaryResponse{}, err
		}
	} else {
		s.logger.Warn("reconciled attendance has non-positive hours",
			zap.String("attendance_id", attendanceID),
			zap.Float64("hours_worked", a.HoursWorked),
		)
	}

	if err := s.resumTotals(ctx, qtx, record); err != nil {
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("attendance reconciled into salary",
		zap.String("attendance_id", attendanceID),
		zap.String("salary_record_id", record.ID.String()),
		zap.Float64("total_hours", record.TotalHours),
	)

	return mapToResponse(*record), nil
}

// resumTotals recomputes the stored totals from the record's current line
// items so they always agree with the breakdown.
func (s *service) resumTotals(ctx context.Context, qtx Repository, record *SalaryRecord) error {
	items, err := qtx.ListLineItems(ctx, record.ID.String())
	if err != nil {
		return err
	}

	var (
		totalHours   float64
		totalPay     int64
		workDays     = map[string]struct{}{}
		realItems    int
		placeholders int
	)
	for _, item := range items {
		if item.AttendanceID == nil {
			placeholders++
			continue
		}
		realItems++
		totalHours += item.HoursWorked
		totalPay += item.Amount
		workDays[item.WorkDate.Format("2006-01-02")] = struct{}{}
	}

	// Reconciling the month's last real item away must leave the same
	// placeholder a full recompute of the empty month would produce.
	if realItems == 0 && placeholders == 0 {
		if err := qtx.CreateLineItem(ctx, placeholderLineItem(record)); err != nil {
			return err
		}
	}

	record.TotalHours = totalHours
	record.TotalHourlyPay = totalPay
	record.WorkingDays = len(workDays)

	return qtx.Update(ctx, record)
}

func (s *service) findOrCreateRecord(ctx context.Context, qtx Repository, employeeID string, month, year int) (*SalaryRecord, error) {
	record, err := qtx.FindByEmployeePeriod(ctx, employeeID, month, year)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record = &SalaryRecord{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(employeeID),
		Month:      month,
		Year:       year,
		Status:     StatusPending,
	}
	if err := qtx.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) BatchGenerate(ctx context.Context, req BatchGenerateRequest) (BatchGenerateResponse, error) {
	employees, err := s.employeeRepo.FindAllActiveByRoles(ctx, employee.PayrollEligibleRoles)
	if err != nil {
		return BatchGenerateResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BatchGenerateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	result := BatchGenerateResponse{Month: req.Month, Year: req.Year}

	for _, emp := range employees {
		_, err := qtx.FindByEmployeePeriod(ctx, emp.ID.String(), req.Month, req.Year)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return BatchGenerateResponse{}, err
		}

		record := &SalaryRecord{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			Month:      req.Month,
			Year:       req.Year,
			Status:     StatusPending,
		}
		if err := qtx.Create(ctx, record); err != nil {
			// A reconcile racing the batch may have created the
			// period record after our existence check.
			if isUniqueViolation(err) {
				result.Skipped++
				continue
			}
			return BatchGenerateResponse{}, err
		}
		result.Created++
	}

	if err := tx.Commit(); err != nil {
		return BatchGenerateResponse{}, err
	}

	s.logger.Info("batch salary generation",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *service) MarkPaid(ctx context.Context, recordID string) (SalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	if record.Status == StatusPaid {
		return SalaryResponse{}, salaryerrors.ErrSalaryAlreadyPaid
	}

	now := time.Now().UTC()
	record.Status = StatusPaid
	record.PaidAt = &now

	if err := qtx.Update(ctx, record); err != nil {
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("salary marked paid",
		zap.String("salary_record_id", recordID),
		zap.Int64("net_pay", netPay(*record)),
	)

	return mapToResponse(*record), nil
}

func (s *service) Reopen(ctx context.Context, recordID string) (SalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	if record.Status != StatusPaid {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotPaid
	}

	record.Status = StatusPending
	record.PaidAt = nil

	if err := qtx.Update(ctx, record); err != nil {
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("salary reopened", zap.String("salary_record_id", recordID))

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, filter ListSalaryFilter) ([]SalaryResponse, error) {
	records, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]SalaryResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, recordID string) (SalaryResponse, error) {
	record, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) GetDailyDetails(ctx context.Context, recordID string) ([]DailyDetailResponse, error) {
	if _, err := s.repo.FindByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salaryerrors.ErrSalaryNotFound
		}
		return nil, err
	}

	items, err := s.repo.ListLineItems(ctx, recordID)
	if err != nil {
		return nil, err
	}

	res := make([]DailyDetailResponse, len(items))
	for i, item := range items {
		res[i] = mapLineItem(item)
	}
	return res, nil
}

func netPay(r SalaryRecord) int64 {
	return r.TotalHourlyPay + r.Bonus - r.Deduction
}

func mapToResponse(r SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		ID:             r.ID.String(),
		EmployeeID:     r.EmployeeID.String(),
		Month:          r.Month,
		Year:           r.Year,
		TotalHours:     r.TotalHours,
		TotalHourlyPay: r.TotalHourlyPay,
		Bonus:          r.Bonus,
		Deduction:      r.Deduction,
		NetPay:         netPay(r),
		WorkingDays:    r.WorkingDays,
		Status:         r.Status,
	}
	if r.PaidAt != nil {
		v := r.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapLineItem(item SalaryLineItem) DailyDetailResponse {
	resp := DailyDetailResponse{
		ID:          item.ID.String(),
		WorkDate:    item.WorkDate.Format("2006-01-02"),
		Shift:       item.Shift,
		HoursWorked: item.HoursWorked,
		Amount:      item.Amount,
	}
	if item.AttendanceID != nil {
		v := item.AttendanceID.String()
		resp.AttendanceID = &v
	}
	if item.WageRateID != nil {
		v := item.WageRateID.String()
		resp.WageRateID = &v
	}
	return resp
}
