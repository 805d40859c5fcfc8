package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleWaiter  = "waiter"
	RoleKitchen = "kitchen"
	RoleAdmin   = "admin"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	FullName       string    `gorm:"type:varchar(120);not null"`
	Email          string    `gorm:"type:varchar(120);uniqueIndex"`
	Phone          string    `gorm:"type:varchar(20)"`
	Role           string    `gorm:"type:varchar(20);not null;index"`
	HireDate       time.Time `gorm:"type:date;not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func IsValidRole(role string) bool {
	switch role {
	case RoleWaiter, RoleKitchen, RoleAdmin:
		return true
	default:
		return false
	}
}

// PayrollEligibleRoles are the roles batch payroll generation covers.
// Admin accounts are salaried outside the hourly system.
var PayrollEligibleRoles = []string{RoleWaiter, RoleKitchen}
