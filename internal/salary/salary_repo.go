package salary

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/Bang334/QuanAn-sub002/internal/attendance"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, record *SalaryRecord) error
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
	FindByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*SalaryRecord, error)
	FindAll(ctx context.Context, filter ListSalaryFilter) ([]SalaryRecord, error)
	Update(ctx context.Context, record *SalaryRecord) error

	CreateLineItem(ctx context.Context, item *SalaryLineItem) error
	ListLineItems(ctx context.Context, recordID string) ([]SalaryLineItem, error)
	DeleteLineItemsByRecord(ctx context.Context, recordID string) error
	DeleteLineItemByAttendance(ctx context.Context, recordID, attendanceID string) error
	DeletePlaceholderLineItems(ctx context.Context, recordID string) error

	FindAttendanceByID(ctx context.Context, attendanceID string) (*attendance.Attendance, error)
	ListApprovedAttendance(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds queries to the transaction attached through WithTx; without
// one they run on the shared pool.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	session := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	session.Statement.ConnPool = r.tx
	return session
}

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.conn(ctx).Create(record).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.conn(ctx).First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Where("year = ?", year).
		First(&record).Error
	return &record, err
}

func (r *repository) FindAll(ctx context.Context, filter ListSalaryFilter) ([]SalaryRecord, error) {
	db := r.conn(ctx).Model(&SalaryRecord{})
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month > 0 {
		db = db.Where("month = ?", filter.Month)
	}
	if filter.Year > 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var records []SalaryRecord
	err := db.Order("year DESC, month DESC, employee_id").Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, record *SalaryRecord) error {
	return r.conn(ctx).Save(record).Error
}

func (r *repository) CreateLineItem(ctx context.Context, item *SalaryLineItem) error {
	return r.conn(ctx).Create(item).Error
}

func (r *repository) ListLineItems(ctx context.Context, recordID string) ([]SalaryLineItem, error) {
	var items []SalaryLineItem
	err := r.conn(ctx).
		Where("salary_record_id = ?", recordID).
		Order("work_date, created_at").
		Find(&items).Error
	return items, err
}

func (r *repository) DeleteLineItemsByRecord(ctx context.Context, recordID string) error {
	return r.conn(ctx).
		Where("salary_record_id = ?", recordID).
		Delete(&SalaryLineItem{}).Error
}

func (r *repository) DeleteLineItemByAttendance(ctx context.Context, recordID, attendanceID string) error {
	return r.conn(ctx).
		Where("salary_record_id = ?", recordID).
		Where("attendance_id = ?", attendanceID).
		Delete(&SalaryLineItem{}).Error
}

func (r *repository) DeletePlaceholderLineItems(ctx context.Context, recordID string) error {
	return r.conn(ctx).
		Where("salary_record_id = ?", recordID).
		Where("attendance_id IS NULL").
		Delete(&SalaryLineItem{}).Error
}

func (r *repository) FindAttendanceByID(ctx context.Context, attendanceID string) (*attendance.Attendance, error) {
	var a attendance.Attendance
	err := r.conn(ctx).First(&a, "id = ?", attendanceID).Error
	return &a, err
}

// ListApprovedAttendance returns the month's approved attendance in work
// date order. Recompute relies on this ordering for stable line items.
func (r *repository) ListApprovedAttendance(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	var rows []attendance.Attendance
	err := r.conn(ctx).
		Model(&attendance.Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", attendance.StatusApproved).
		Where("EXTRACT(MONTH FROM work_date) = ?", month).
		Where("EXTRACT(YEAR FROM work_date) = ?", year).
		Order("work_date").
		Find(&rows).Error
	return rows, err
}
