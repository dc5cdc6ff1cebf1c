package models

import "time"

// Admin is the single back-office account created through one-time
// registration. Password holds a bcrypt hash, never the plain text.
type Admin struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex" validate:"required"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
