package models

import "time"

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FullName      string `gorm:"size:100;not null" json:"full_name"`
	StreetAddress string `gorm:"size:255;not null" json:"street_address"`
	City          string `gorm:"size:100;not null" json:"city"`
	State         string `gorm:"size:100" json:"state"`
	ZipCode       string `gorm:"size:20" json:"zip_code"`
	Country       string `gorm:"size:100;default:'Lebanon'" json:"country"`
	Phone         string `gorm:"size:20" json:"phone"`

	// At most one per user; the swap is done inside one transaction.
	IsDefault bool `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
