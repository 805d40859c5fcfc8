package promotion

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=promotion_repo.go -destination=mock/promotion_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Promotion) error
	FindAll(ctx context.Context, filter ListPromotionFilter) ([]Promotion, error)
	FindByID(ctx context.Context, id string) (*Promotion, error)
	// FindLiveByMenuItem returns the best live discount for a menu item,
	// or gorm.ErrRecordNotFound when none applies.
	FindLiveByMenuItem(ctx context.Context, menuItemID string, at time.Time) (*Promotion, error)
	Deactivate(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, p *Promotion) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListPromotionFilter) ([]Promotion, error) {
	db := r.conn(ctx).Model(&Promotion{})
	if filter.MenuItemID != "" {
		db = db.Where("menu_item_id = ?", filter.MenuItemID)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var rows []Promotion
	err := db.Order("starts_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Promotion, error) {
	var p Promotion
	err := r.conn(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindLiveByMenuItem(ctx context.Context, menuItemID string, at time.Time) (*Promotion, error) {
	var p Promotion
	err := r.conn(ctx).
		Where("menu_item_id = ?", menuItemID).
		Where("is_active = ?", true).
		Where("starts_at <= ?", at).
		Where("ends_at > ?", at).
		Order("discount_percent DESC").
		First(&p).Error
	return &p, err
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	result := r.conn(ctx).
		Model(&Promotion{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
