package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *OrderGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Address
// --------------------------------------------------

func (r *OrderGormRepository) GetAddressForUser(
	ctx context.Context,
	addressID uint,
	userID uint,
) (*models.Address, error) {

	var addr models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&addr).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Existence of another user's address is never leaked.
			return nil, httperr.ErrBusiness("address_not_found")
		}
		return nil, err
	}
	return &addr, nil
}

func (r *OrderGormRepository) CreateAddress(
	ctx context.Context,
	addr *models.Address,
) error {

	if !addr.IsDefault {
		return r.db.WithContext(ctx).Create(addr).Error
	}

	// Default swap and insert share one transaction so no reader ever
	// observes zero or two defaults for the user.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ?", addr.UserID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Create(addr).Error
	})
}

func (r *OrderGormRepository) SetDefaultAddress(
	ctx context.Context,
	addressID uint,
	userID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Existence is checked explicitly: MySQL reports changed rows,
		// not matched rows, so RowsAffected on a no-op update cannot
		// distinguish "already default" from "not found".
		var addr models.Address
		if err := tx.Where("id = ? AND user_id = ?", addressID, userID).
			First(&addr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("address_not_found")
			}
			return err
		}

		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND id != ?", userID, addressID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		if addr.IsDefault {
			return nil
		}
		return tx.Model(&addr).Update("is_default", true).Error
	})
}

// --------------------------------------------------
// Order (create)
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
	items []models.OrderItem,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Order (read)
// --------------------------------------------------

func (r *OrderGormRepository) GetOrder(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrdersForUser(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListOrderItems(
	ctx context.Context,
	orderID uint,
) ([]domain.ItemDetail, error) {

	var items []domain.ItemDetail
	if err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("order_items.*, products.name AS product_name, products.image AS product_image").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --------------------------------------------------
// Order (state change)
// --------------------------------------------------

func (r *OrderGormRepository) UpdateOrderStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
