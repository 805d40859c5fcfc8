package wagerate

import (
	"time"

	"github.com/google/uuid"
)

// WageRate is an hourly pay rate for a role, optionally narrowed to one
// shift. Rates are superseded by newer effective dates, never deleted.
type WageRate struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Role          string    `gorm:"column:role;type:varchar(20);not null;index:idx_wage_rates_role_shift"`
	Shift         string    `gorm:"column:shift;type:varchar(20);not null;index:idx_wage_rates_role_shift"`
	HourlyRate    int64     `gorm:"column:hourly_rate;not null"`
	EffectiveDate time.Time `gorm:"column:effective_date;type:date;not null"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (WageRate) TableName() string {
	return "wage_rates"
}
