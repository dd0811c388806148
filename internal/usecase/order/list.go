package order

import (
	"context"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/models"
)

// OrderWithItems is the enriched read shape every order endpoint
// returns: the header plus its lines joined with product name/image.
type OrderWithItems struct {
	models.Order
	Items []domain.ItemDetail `json:"items"`
}

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

// All returns every order in the shop (back office view).
func (uc *ListOrders) All(ctx context.Context) ([]OrderWithItems, error) {
	orders, err := uc.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, orders)
}

// ForUser returns the requesting user's own orders.
func (uc *ListOrders) ForUser(ctx context.Context, userID uint) ([]OrderWithItems, error) {
	orders, err := uc.repo.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, orders)
}

// OneForUser returns a single order with items, scoped to its owner.
// Someone else's order reads as not-found.
func (uc *ListOrders) OneForUser(ctx context.Context, orderID, userID uint) (*OrderWithItems, error) {
	o, err := uc.repo.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderWithItems{Order: *o, Items: items}, nil
}

// One returns a single order with items.
func (uc *ListOrders) One(ctx context.Context, orderID uint) (*OrderWithItems, error) {
	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderWithItems{Order: *o, Items: items}, nil
}

func (uc *ListOrders) enrich(ctx context.Context, orders []models.Order) ([]OrderWithItems, error) {
	out := make([]OrderWithItems, 0, len(orders))
	for _, o := range orders {
		items, err := uc.repo.ListOrderItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderWithItems{Order: o, Items: items})
	}
	return out, nil
}
