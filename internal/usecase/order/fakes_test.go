package order

import (
	"context"
	"errors"
	"time"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	users     map[uint]*models.User
	addresses map[uint]*models.Address
	orders    map[uint]*models.Order
	items     map[uint][]models.OrderItem
	products  map[uint]*models.Product

	nextAddressID uint
	nextOrderID   uint

	failCreateOrder bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:         map[uint]*models.User{},
		addresses:     map[uint]*models.Address{},
		orders:        map[uint]*models.Order{},
		items:         map[uint][]models.OrderItem{},
		products:      map[uint]*models.Product{},
		nextAddressID: 1,
		nextOrderID:   1,
	}
}

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeRepo) GetAddressForUser(_ context.Context, addressID, userID uint) (*models.Address, error) {
	a, ok := f.addresses[addressID]
	if !ok || a.UserID != userID {
		return nil, httperr.ErrBusiness("address_not_found")
	}
	return a, nil
}

func (f *fakeRepo) CreateAddress(_ context.Context, addr *models.Address) error {
	if addr.IsDefault {
		for _, a := range f.addresses {
			if a.UserID == addr.UserID {
				a.IsDefault = false
			}
		}
	}
	addr.ID = f.nextAddressID
	f.nextAddressID++
	f.addresses[addr.ID] = addr
	return nil
}

func (f *fakeRepo) SetDefaultAddress(_ context.Context, addressID, userID uint) error {
	target, ok := f.addresses[addressID]
	if !ok || target.UserID != userID {
		return httperr.ErrBusiness("address_not_found")
	}
	for _, a := range f.addresses {
		if a.UserID == userID {
			a.IsDefault = a.ID == addressID
		}
	}
	return nil
}

func (f *fakeRepo) CreateOrder(_ context.Context, o *models.Order, items []models.OrderItem) error {
	if f.failCreateOrder {
		return errors.New("insert failed")
	}
	o.ID = f.nextOrderID
	f.nextOrderID++
	f.orders[o.ID] = o
	for i := range items {
		items[i].OrderID = o.ID
	}
	f.items[o.ID] = items
	return nil
}

func (f *fakeRepo) GetOrder(_ context.Context, id uint) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	cp := *o
	return &cp, nil
}

func (f *fakeRepo) GetOrderForUser(_ context.Context, id, userID uint) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.UserID != userID {
		return nil, errors.New("order not found")
	}
	cp := *o
	return &cp, nil
}

func (f *fakeRepo) ListOrders(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeRepo) ListOrdersForUser(_ context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOrderItems(_ context.Context, orderID uint) ([]domain.ItemDetail, error) {
	var out []domain.ItemDetail
	for _, it := range f.items[orderID] {
		d := domain.ItemDetail{OrderItem: it}
		if p, ok := f.products[it.ProductID]; ok {
			d.ProductName = p.Name
			d.ProductImage = p.Image
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepo) UpdateOrderStatus(_ context.Context, id uint, status domain.Status) error {
	o, ok := f.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Status = string(status)
	o.UpdatedAt = time.Now()
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier counts dispatched mails instead of sending them.
type fakeNotifier struct {
	invoices   int
	deliveries int
}

func (f *fakeNotifier) EnqueueInvoice(*models.Order, *models.User, []domain.ItemDetail) {
	f.invoices++
}

func (f *fakeNotifier) EnqueueDelivery(*models.Order, *models.User, []domain.ItemDetail) {
	f.deliveries++
}
