package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint  `gorm:"index;not null" json:"order_id"`
	Order   Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// No FK to products: the line is a snapshot and must survive the
	// product being deleted from the catalog.
	ProductID uint `gorm:"index;not null" json:"product_id"`

	Quantity int `gorm:"not null" json:"quantity"`

	// Unit price at time of purchase. Never re-read from the product row.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
