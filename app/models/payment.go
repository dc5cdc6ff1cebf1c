package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money owed or paid to an employee. Amounts are entered by hand;
// nothing ties them back to approved production totals.
type Payment struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeID   string          `json:"employeeId" gorm:"not null;index;type:uuid" validate:"required"`
	EmployeeName string          `json:"employeeName,omitempty"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null" validate:"required"`
	Status       PaymentStatus   `json:"status" gorm:"not null;default:'Pending';type:varchar(20)"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes,omitempty"`
	PeriodStart  *time.Time      `json:"periodStart,omitempty" gorm:"type:date"`
	PeriodEnd    *time.Time      `json:"periodEnd,omitempty" gorm:"type:date"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
