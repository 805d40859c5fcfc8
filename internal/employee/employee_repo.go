package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindAllActiveByRoles(ctx context.Context, roles []string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	GetRoleByID(ctx context.Context, id string) (string, error)
	Update(ctx context.Context, e *Employee) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Order("employee_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllActiveByRoles(ctx context.Context, roles []string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Where("role IN ?", roles).
		Where("is_active = true").
		Order("employee_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) GetRoleByID(ctx context.Context, id string) (string, error) {
	var role string
	err := r.conn(ctx).
		Model(&Employee{}).
		Select("role").
		Where("id = ?", id).
		Scan(&role).Error
	return role, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Employee{}, "id = ?", id).Error
}
