package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is customer feedback on one menu item. Hidden reviews stay in
// the database but are excluded from public listings.
type Review struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	MenuItemID   uuid.UUID      `gorm:"column:menu_item_id;type:uuid;not null;index"`
	CustomerName string         `gorm:"column:customer_name;type:varchar(255);not null"`
	Rating       int            `gorm:"column:rating;not null"`
	Comment      *string        `gorm:"column:comment;type:text"`
	IsHidden     bool           `gorm:"column:is_hidden;not null;default:false"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Review) TableName() string {
	return "reviews"
}
