package models

import "time"

// Contact form submission. No lifecycle beyond create and admin delete.
type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Message string `gorm:"size:2000;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
