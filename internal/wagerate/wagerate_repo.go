package wagerate

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=wagerate_repo.go -destination=mock/wagerate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rate *WageRate) error
	FindByID(ctx context.Context, id string) (*WageRate, error)
	FindAll(ctx context.Context, filter ListWageRateFilter) ([]WageRate, error)
	// FindEffective returns the newest active rate for role+shift whose
	// effective date is not after asOf.
	FindEffective(ctx context.Context, role, shift string, asOf time.Time) (*WageRate, error)
	// FindEffectiveByRole is the shift-agnostic fallback.
	FindEffectiveByRole(ctx context.Context, role string, asOf time.Time) (*WageRate, error)
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

func (r *repository) Create(ctx context.Context, rate *WageRate) error {
	return r.conn(ctx).Create(rate).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*WageRate, error) {
	var rate WageRate
	err := r.conn(ctx).First(&rate, "id = ?", id).Error
	return &rate, err
}

func (r *repository) FindAll(ctx context.Context, filter ListWageRateFilter) ([]WageRate, error) {
	db := r.conn(ctx).Model(&WageRate{})
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Shift != "" {
		db = db.Where("shift = ?", filter.Shift)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var rates []WageRate
	err := db.Order("role, shift, effective_date DESC").Find(&rates).Error
	return rates, err
}

func (r *repository) FindEffective(ctx context.Context, role, shift string, asOf time.Time) (*WageRate, error) {
	var rate WageRate
	err := r.conn(ctx).
		Where("role = ?", role).
		Where("shift = ?", shift).
		Where("is_active = ?", true).
		Where("effective_date <= ?", asOf.Format("2006-01-02")).
		Order("effective_date DESC").
		First(&rate).Error
	return &rate, err
}

func (r *repository) FindEffectiveByRole(ctx context.Context, role string, asOf time.Time) (*WageRate, error) {
	var rate WageRate
	err := r.conn(ctx).
		Where("role = ?", role).
		Where("is_active = ?", true).
		Where("effective_date <= ?", asOf.Format("2006-01-02")).
		Order("effective_date DESC").
		First(&rate).Error
	return &rate, err
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	result := r.conn(ctx).
		Model(&WageRate{}).
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
