package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Phone       string `gorm:"size:20;not null" json:"phone"`
	Slot        string `gorm:"size:100" json:"slot"`
	Description string `gorm:"size:2000" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
