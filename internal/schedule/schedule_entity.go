package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift labels shared across scheduling, attendance and payroll.
const (
	ShiftMorning = "MORNING"
	ShiftEvening = "EVENING"
	ShiftNight   = "NIGHT"

	// DefaultShift is assumed when an attendance has no schedule linkage.
	DefaultShift = ShiftMorning
)

func IsValidShift(shift string) bool {
	switch shift {
	case ShiftMorning, ShiftEvening, ShiftNight:
		return true
	default:
		return false
	}
}

// ShiftAssignment plans one employee onto one shift for one work date.
type ShiftAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_assignment_employee_date,unique"`
	WorkDate   time.Time `gorm:"type:date;not null;index:idx_assignment_employee_date,unique"`
	Shift      string    `gorm:"type:varchar(20);not null"`
	Note       *string   `gorm:"type:text"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
