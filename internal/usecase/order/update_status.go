package order

import (
	"context"
	"log"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/mail"
	"github.com/africamarket/africa-market-api/internal/models"
)

type UpdateStatus struct {
	repo     domain.Repository
	notifier mail.Notifier
}

func NewUpdateStatus(repo domain.Repository, notifier mail.Notifier) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
	}
}

// Execute validates the transition, persists the new status and fires
// the delivery confirmation when the order first reaches "delivered".
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	orderID uint,
	rawStatus string,
) (*models.Order, error) {

	target, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	o, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(o.Status)
	if err := domain.CanTransition(current, target); err != nil {
		return nil, err
	}

	if current != target {
		if err := uc.repo.UpdateOrderStatus(ctx, orderID, target); err != nil {
			return nil, err
		}
		// Re-read so the caller sees the stored row, not a locally
		// patched struct with a stale UpdatedAt.
		o, err = uc.repo.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
	}

	if domain.NotifyDelivery(current, target) {
		uc.notifyDelivered(ctx, o)
	}

	return o, nil
}

func (uc *UpdateStatus) notifyDelivered(ctx context.Context, o *models.Order) {
	user, err := uc.repo.GetUser(ctx, o.UserID)
	if err != nil {
		log.Printf("order status: load user %d for delivery mail: %v", o.UserID, err)
		return
	}
	items, err := uc.repo.ListOrderItems(ctx, o.ID)
	if err != nil {
		log.Printf("order status: load items for order #%d: %v", o.ID, err)
	}
	uc.notifier.EnqueueDelivery(o, user, items)
}
