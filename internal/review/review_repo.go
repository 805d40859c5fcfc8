package review

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=review_repo.go -destination=mock/review_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id string) (*Review, error)
	FindByMenuItem(ctx context.Context, menuItemID string, includeHidden bool) ([]Review, error)
	Update(ctx context.Context, r *Review) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rv *Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Review, error) {
	var rv Review
	err := r.db.WithContext(ctx).First(&rv, "id = ?", id).Error
	return &rv, err
}

func (r *repository) FindByMenuItem(ctx context.Context, menuItemID string, includeHidden bool) ([]Review, error) {
	db := r.db.WithContext(ctx).Where("menu_item_id = ?", menuItemID)
	if !includeHidden {
		db = db.Where("is_hidden = ?", false)
	}

	var rows []Review
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rv *Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}
