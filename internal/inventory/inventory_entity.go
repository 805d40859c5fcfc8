package inventory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MovementReceipt = "RECEIPT"
	MovementUsage   = "USAGE"
)

type Ingredient struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_ingredients_name"`
	Unit         string         `gorm:"column:unit;type:varchar(20);not null"`
	StockQty     float64        `gorm:"column:stock_qty;not null;default:0"`
	ReorderLevel float64        `gorm:"column:reorder_level;not null;default:0"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

type Supplier struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"column:name;type:varchar(255);not null"`
	Phone     *string        `gorm:"column:phone;type:varchar(20)"`
	Email     *string        `gorm:"column:email;type:varchar(255)"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// StockMovement is a receipt from a supplier or a kitchen usage entry.
// Receipts carry the supplier and unit cost, usage entries do not.
type StockMovement struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	IngredientID uuid.UUID  `gorm:"column:ingredient_id;type:uuid;not null;index"`
	SupplierID   *uuid.UUID `gorm:"column:supplier_id;type:uuid"`
	Type         string     `gorm:"column:type;type:varchar(20);not null"`
	Quantity     float64    `gorm:"column:quantity;not null"`
	UnitCost     *int64     `gorm:"column:unit_cost"`
	Notes        *string    `gorm:"column:notes;type:text"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
