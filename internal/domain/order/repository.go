package order

import (
	"context"

	"github.com/africamarket/africa-market-api/internal/models"
)

// ItemDetail is an order line joined with the product it snapshotted.
type ItemDetail struct {
	models.OrderItem
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
}

type Repository interface {
	// -------- User --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Address --------
	GetAddressForUser(
		ctx context.Context,
		addressID uint,
		userID uint,
	) (*models.Address, error)

	// CreateAddress persists a new address; when addr.IsDefault is set
	// the swap (clear others, set this one) happens in one transaction.
	CreateAddress(
		ctx context.Context,
		addr *models.Address,
	) error

	SetDefaultAddress(
		ctx context.Context,
		addressID uint,
		userID uint,
	) error

	// -------- Order (create) --------

	// CreateOrder persists the header and all items atomically.
	// All-or-nothing: a failed item insert rolls the header back.
	CreateOrder(
		ctx context.Context,
		o *models.Order,
		items []models.OrderItem,
	) error

	// -------- Order (read) --------
	GetOrder(
		ctx context.Context,
		id uint,
	) (*models.Order, error)

	GetOrderForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Order, error)

	ListOrders(
		ctx context.Context,
	) ([]models.Order, error)

	ListOrdersForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Order, error)

	ListOrderItems(
		ctx context.Context,
		orderID uint,
	) ([]ItemDetail, error)

	// -------- Order (state change) --------
	UpdateOrderStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error
}
