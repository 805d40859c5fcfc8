package order

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=order_repo.go -destination=mock/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateTable(ctx context.Context, t *DiningTable) error
	FindAllTables(ctx context.Context) ([]DiningTable, error)
	FindTableByID(ctx context.Context, id string) (*DiningTable, error)

	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context, filter ListOrderFilter) ([]Order, error)
	Update(ctx context.Context, o *Order) error
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

func (r *repository) CreateTable(ctx context.Context, t *DiningTable) error {
	return r.conn(ctx).Create(t).Error
}

func (r *repository) FindAllTables(ctx context.Context) ([]DiningTable, error) {
	var rows []DiningTable
	err := r.conn(ctx).Order("number").Find(&rows).Error
	return rows, err
}

func (r *repository) FindTableByID(ctx context.Context, id string) (*DiningTable, error) {
	var t DiningTable
	err := r.conn(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	return r.conn(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.conn(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) FindAll(ctx context.Context, filter ListOrderFilter) ([]Order, error) {
	db := r.conn(ctx).Model(&Order{}).Preload("Items")
	if filter.TableID != "" {
		db = db.Where("table_id = ?", filter.TableID)
	}
	if filter.WaiterID != "" {
		db = db.Where("waiter_id = ?", filter.WaiterID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var rows []Order
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, o *Order) error {
	return r.conn(ctx).Save(o).Error
}
