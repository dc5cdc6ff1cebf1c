package models

import "github.com/shopspring/decimal"

// Employee is a piecework worker. The mobile number doubles as the login
// credential for the employee pages, so it must be unique.
type Employee struct {
	ID      string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name    string          `json:"name" gorm:"not null" validate:"required"`
	Mobile  string          `json:"mobile" gorm:"not null;uniqueIndex" validate:"required"`
	Address string          `json:"address,omitempty"`
	Rate    decimal.Decimal `json:"rate" gorm:"type:numeric(12,2);default:0"`
}
