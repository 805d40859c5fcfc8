package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Attendance struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_employee_date,unique"`
	WorkDate     time.Time  `gorm:"column:work_date;type:date;not null;index:idx_attendance_employee_date,unique"`
	Shift        string     `gorm:"column:shift;type:varchar(20);not null"`
	AssignmentID *uuid.UUID `gorm:"column:assignment_id;type:uuid"`
	ClockIn      time.Time  `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut     *time.Time `gorm:"column:clock_out;type:timestamptz"`
	HoursWorked  float64    `gorm:"column:hours_worked;not null;default:0"`
	Late         bool       `gorm:"column:late;not null;default:false"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:PENDING;index"`
	Notes        *string    `gorm:"column:notes;type:text"`
	ApprovedBy   *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt   *time.Time `gorm:"column:approved_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
