package promotion

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotion is a time-bounded percentage discount on one menu item.
type Promotion struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string         `gorm:"column:name;type:varchar(255);not null"`
	MenuItemID      uuid.UUID      `gorm:"column:menu_item_id;type:uuid;not null;index"`
	DiscountPercent int            `gorm:"column:discount_percent;not null"`
	StartsAt        time.Time      `gorm:"column:starts_at;type:timestamptz;not null"`
	EndsAt          time.Time      `gorm:"column:ends_at;type:timestamptz;not null"`
	IsActive        bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Promotion) TableName() string {
	return "promotions"
}

// AppliesAt reports whether the promotion is live at the given instant.
func (p Promotion) AppliesAt(t time.Time) bool {
	return p.IsActive && !t.Before(p.StartsAt) && t.Before(p.EndsAt)
}
