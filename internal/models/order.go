package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"size:36;uniqueIndex" json:"number"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// TotalAmount is the subtotal; shipping is kept separately and the
	// grand total is derived at the edge, as the storefront expects.
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_cost"`

	// Immutable snapshot of where the order ships, captured at checkout.
	ShippingAddress string   `gorm:"size:500" json:"shipping_address"`
	AddressID       *uint    `json:"address_id"`
	Address         *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
