package schedule

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *ShiftAssignment) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ShiftAssignment, error)
	FindAll(ctx context.Context, filter ListAssignmentsFilter) ([]ShiftAssignment, error)
	Update(ctx context.Context, a *ShiftAssignment) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, a *ShiftAssignment) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ShiftAssignment, error) {
	var a ShiftAssignment
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context, filter ListAssignmentsFilter) ([]ShiftAssignment, error) {
	db := r.conn(ctx).Model(&ShiftAssignment{})

	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != "" {
		db = db.Where("work_date >= ?", filter.From)
	}
	if filter.To != "" {
		db = db.Where("work_date <= ?", filter.To)
	}

	var rows []ShiftAssignment
	err := db.Order("work_date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *ShiftAssignment) error {
	return r.conn(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&ShiftAssignment{}, "id = ?", id).Error
}
