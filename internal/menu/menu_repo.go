package menu

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=menu_repo.go -destination=mock/menu_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, item *MenuItem) error
	FindAll(ctx context.Context, filter ListMenuFilter) ([]MenuItem, error)
	FindAllAvailable(ctx context.Context) ([]MenuItem, error)
	FindByID(ctx context.Context, id string) (*MenuItem, error)
	Update(ctx context.Context, item *MenuItem) error
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

func (r *repository) Create(ctx context.Context, item *MenuItem) error {
	return r.conn(ctx).Create(item).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListMenuFilter) ([]MenuItem, error) {
	db := r.conn(ctx).Model(&MenuItem{})
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Available != nil {
		db = db.Where("is_available = ?", *filter.Available)
	}

	var rows []MenuItem
	err := db.Order("category, name").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllAvailable(ctx context.Context) ([]MenuItem, error) {
	var rows []MenuItem
	err := r.conn(ctx).
		Where("is_available = ?", true).
		Order("category, name").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	var item MenuItem
	err := r.conn(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *repository) Update(ctx context.Context, item *MenuItem) error {
	return r.conn(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.conn(ctx).Delete(&MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
