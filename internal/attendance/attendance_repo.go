package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string, filter ListAttendanceFilter) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func applyFilter(db *gorm.DB, filter ListAttendanceFilter) *gorm.DB {
	if filter.Month > 0 && filter.Year > 0 {
		db = db.
			Where("EXTRACT(MONTH FROM work_date) = ?", filter.Month).
			Where("EXTRACT(YEAR FROM work_date) = ?", filter.Year)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	return db
}

func (r *repository) FindAll(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error) {
	db := r.conn(ctx).Model(&Attendance{})
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	db = applyFilter(db, filter)

	var rows []Attendance
	err := db.Order("work_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string, filter ListAttendanceFilter) ([]Attendance, error) {
	db := r.conn(ctx).
		Model(&Attendance{}).
		Where("employee_id = ?", employeeID)
	db = applyFilter(db, filter)

	var rows []Attendance
	err := db.Order("work_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Save(a).Error
}
