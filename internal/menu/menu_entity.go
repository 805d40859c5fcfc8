package menu

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryMain    = "MAIN"
	CategorySide    = "SIDE"
	CategoryDrink   = "DRINK"
	CategoryDessert = "DESSERT"
)

// MenuItem prices are whole VND.
type MenuItem struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_menu_items_name"`
	Category    string         `gorm:"column:category;type:varchar(20);not null;index"`
	Price       int64          `gorm:"column:price;not null"`
	Description *string        `gorm:"column:description;type:text"`
	IsAvailable bool           `gorm:"column:is_available;not null;default:true"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
