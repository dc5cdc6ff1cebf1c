package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production is a single day's piecework entry for one employee. Rate is
// snapshotted at submission time; later changes to the employee's rate never
// touch existing entries.
type Production struct {
	ID           string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployeeID   string           `json:"employee" gorm:"not null;index;type:uuid" validate:"required"`
	EmployeeName string           `json:"employeeName,omitempty"`
	PS           decimal.Decimal  `json:"ps" gorm:"type:numeric(12,2);not null" validate:"required"`
	DesignName   string           `json:"designName,omitempty"`
	Rate         decimal.Decimal  `json:"rate" gorm:"type:numeric(12,2);not null" validate:"required"`
	Total        decimal.Decimal  `json:"total" gorm:"type:numeric(14,2)"`
	Date         time.Time        `json:"date"`
	Status       ProductionStatus `json:"status" gorm:"not null;index;type:varchar(20)"`
	SubmittedBy  SubmittedBy      `json:"submittedBy" gorm:"not null;type:varchar(20)"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// CalcTotal stamps total = ps * rate. Every create and update path must call
// this before the row is written; total is never derived at read time.
func (p *Production) CalcTotal() {
	p.Total = p.PS.Mul(p.Rate)
}
