package order

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusPreparing = "PREPARING"
	StatusServed    = "SERVED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// statusTransitions guards the order lifecycle. Absent keys are terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusServed, StatusCancelled},
	StatusServed:    {StatusPaid},
}

func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DiningTable is a physical table in the restaurant.
type DiningTable struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Number    int            `gorm:"column:number;not null;uniqueIndex:idx_dining_tables_number"`
	Seats     int            `gorm:"column:seats;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (DiningTable) TableName() string {
	return "dining_tables"
}

// Order totals are whole VND, fixed when the order is created. Menu price
// changes and expired promotions never alter an existing order.
type Order struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string         `gorm:"column:order_number;type:varchar(20);not null;uniqueIndex:idx_orders_number"`
	TableID     uuid.UUID      `gorm:"column:table_id;type:uuid;not null;index"`
	WaiterID    uuid.UUID      `gorm:"column:waiter_id;type:uuid;not null;index"`
	Status      string         `gorm:"column:status;type:varchar(20);not null;default:PENDING;index"`
	Subtotal    int64          `gorm:"column:subtotal;not null;default:0"`
	Discount    int64          `gorm:"column:discount;not null;default:0"`
	Total       int64          `gorm:"column:total;not null;default:0"`
	Notes       *string        `gorm:"column:notes;type:text"`
	PaidAt      *time.Time     `gorm:"column:paid_at"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the menu item's name and price at order time.
type OrderItem struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID         uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	MenuItemID      uuid.UUID  `gorm:"column:menu_item_id;type:uuid;not null"`
	Name            string     `gorm:"column:name;type:varchar(255);not null"`
	Quantity        int        `gorm:"column:quantity;not null"`
	UnitPrice       int64      `gorm:"column:unit_price;not null"`
	DiscountPercent int        `gorm:"column:discount_percent;not null;default:0"`
	PromotionID     *uuid.UUID `gorm:"column:promotion_id;type:uuid"`
	LineTotal       int64      `gorm:"column:line_total;not null"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
