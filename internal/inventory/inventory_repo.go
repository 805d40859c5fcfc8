package inventory

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_repo.go -destination=mock/inventory_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateIngredient(ctx context.Context, ing *Ingredient) error
	FindAllIngredients(ctx context.Context) ([]Ingredient, error)
	FindLowStockIngredients(ctx context.Context) ([]Ingredient, error)
	FindIngredientByID(ctx context.Context, id string) (*Ingredient, error)
	UpdateIngredient(ctx context.Context, ing *Ingredient) error

	CreateSupplier(ctx context.Context, sup *Supplier) error
	FindAllSuppliers(ctx context.Context) ([]Supplier, error)
	FindSupplierByID(ctx context.Context, id string) (*Supplier, error)

	CreateMovement(ctx context.Context, m *StockMovement) error
	FindMovementsByIngredient(ctx context.Context, ingredientID string) ([]StockMovement, error)
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

func (r *repository) CreateIngredient(ctx context.Context, ing *Ingredient) error {
	return r.conn(ctx).Create(ing).Error
}

func (r *repository) FindAllIngredients(ctx context.Context) ([]Ingredient, error) {
	var rows []Ingredient
	err := r.conn(ctx).Order("name").Find(&rows).Error
	return rows, err
}

func (r *repository) FindLowStockIngredients(ctx context.Context) ([]Ingredient, error) {
	var rows []Ingredient
	err := r.conn(ctx).
		Where("stock_qty <= reorder_level").
		Order("name").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindIngredientByID(ctx context.Context, id string) (*Ingredient, error) {
	var ing Ingredient
	err := r.conn(ctx).First(&ing, "id = ?", id).Error
	return &ing, err
}

func (r *repository) UpdateIngredient(ctx context.Context, ing *Ingredient) error {
	return r.conn(ctx).Save(ing).Error
}

func (r *repository) CreateSupplier(ctx context.Context, sup *Supplier) error {
	return r.conn(ctx).Create(sup).Error
}

func (r *repository) FindAllSuppliers(ctx context.Context) ([]Supplier, error) {
	var rows []Supplier
	err := r.conn(ctx).Order("name").Find(&rows).Error
	return rows, err
}

func (r *repository) FindSupplierByID(ctx context.Context, id string) (*Supplier, error) {
	var sup Supplier
	err := r.conn(ctx).First(&sup, "id = ?", id).Error
	return &sup, err
}

func (r *repository) CreateMovement(ctx context.Context, m *StockMovement) error {
	return r.conn(ctx).Create(m).Error
}

func (r *repository) FindMovementsByIngredient(ctx context.Context, ingredientID string) ([]StockMovement, error) {
	var rows []StockMovement
	err := r.conn(ctx).
		Where("ingredient_id = ?", ingredientID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
