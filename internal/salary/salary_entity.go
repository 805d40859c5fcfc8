package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// SalaryRecord aggregates one employee's pay for one calendar month.
// Monetary amounts are whole VND. NetPay is never stored, it is derived
// as TotalHourlyPay + Bonus - Deduction whenever a record is read.
type SalaryRecord struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_salary_employee_period,unique"`
	Month          int        `gorm:"column:month;not null;index:idx_salary_employee_period,unique"`
	Year           int        `gorm:"column:year;not null;index:idx_salary_employee_period,unique"`
	TotalHours     float64    `gorm:"column:total_hours;not null;default:0"`
	TotalHourlyPay int64      `gorm:"column:total_hourly_pay;not null;default:0"`
	Bonus          int64      `gorm:"column:bonus;not null;default:0"`
	Deduction      int64      `gorm:"column:deduction;not null;default:0"`
	WorkingDays    int        `gorm:"column:working_days;not null;default:0"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:pending;index"`
	PaidAt         *time.Time `gorm:"column:paid_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

// SalaryLineItem is the per-day pay breakdown behind a record's totals.
// It is a derived cache: recompute deletes and regenerates it. A nil
// AttendanceID marks the zero-amount placeholder written for months
// without any approved attendance.
type SalaryLineItem struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SalaryRecordID uuid.UUID  `gorm:"column:salary_record_id;type:uuid;not null;index"`
	AttendanceID   *uuid.UUID `gorm:"column:attendance_id;type:uuid;index"`
	WorkDate       time.Time  `gorm:"column:work_date;type:date;not null"`
	Shift          string     `gorm:"column:shift;type:varchar(20);not null"`
	WageRateID     *uuid.UUID `gorm:"column:wage_rate_id;type:uuid"`
	HoursWorked    float64    `gorm:"column:hours_worked;not null;default:0"`
	Amount         int64      `gorm:"column:amount;not null;default:0"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (SalaryLineItem) TableName() string {
	return "salary_line_items"
}
