package order

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/mail"
	"github.com/africamarket/africa-market-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CheckoutItem struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

type AddressInput struct {
	FullName      string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
	Country       string
	Phone         string
	IsDefault     bool
}

type CheckoutInput struct {
	UserID uint

	Items []CheckoutItem

	// Exactly one of Address / AddressID must be provided. SaveAddress
	// persists the inline address; otherwise it is only snapshotted.
	Address     *AddressInput
	AddressID   *uint
	SaveAddress bool

	ShippingCost decimal.Decimal
}

type CheckoutResult struct {
	Order  *models.Order
	Items  []domain.ItemDetail
	Totals domain.Totals
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo     domain.Repository
	notifier mail.Notifier
}

func NewCheckout(repo domain.Repository, notifier mail.Notifier) *Checkout {
	return &Checkout{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*CheckoutResult, error) {

	lines := make([]domain.Line, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, domain.Line{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	totals, err := domain.PriceLines(lines, in.ShippingCost)
	if err != nil {
		return nil, err
	}

	snapshot, addressID, err := uc.resolveAddress(ctx, in)
	if err != nil {
		return nil, err
	}

	o := &models.Order{
		Number:          uuid.NewString(),
		UserID:          in.UserID,
		TotalAmount:     totals.Subtotal,
		ShippingCost:    totals.Shipping,
		ShippingAddress: snapshot,
		AddressID:       addressID,
		Status:          string(domain.InitialStatus()),
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	if err := uc.repo.CreateOrder(ctx, o, items); err != nil {
		return nil, err
	}

	details, err := uc.repo.ListOrderItems(ctx, o.ID)
	if err != nil {
		// The order is committed; a failed read-back only degrades the
		// response and the invoice mail.
		log.Printf("checkout: read back items for order #%d: %v", o.ID, err)
		details = nil
	}

	if user, err := uc.repo.GetUser(ctx, in.UserID); err == nil {
		uc.notifier.EnqueueInvoice(o, user, details)
	} else {
		log.Printf("checkout: load user %d for invoice: %v", in.UserID, err)
	}

	return &CheckoutResult{
		Order:  o,
		Items:  details,
		Totals: totals,
	}, nil
}

// resolveAddress turns the checkout address input into the immutable
// snapshot string plus an optional saved-address reference.
func (uc *Checkout) resolveAddress(
	ctx context.Context,
	in CheckoutInput,
) (string, *uint, error) {

	switch {
	case in.AddressID != nil:
		addr, err := uc.repo.GetAddressForUser(ctx, *in.AddressID, in.UserID)
		if err != nil {
			return "", nil, err
		}
		return domain.FormatAddress(addr), &addr.ID, nil

	case in.Address != nil:
		a := in.Address
		if a.FullName == "" || a.StreetAddress == "" || a.City == "" || a.Country == "" {
			return "", nil, httperr.ErrBusiness("address_incomplete")
		}

		addr := &models.Address{
			UserID:        in.UserID,
			FullName:      a.FullName,
			StreetAddress: a.StreetAddress,
			City:          a.City,
			State:         a.State,
			ZipCode:       a.ZipCode,
			Country:       a.Country,
			Phone:         a.Phone,
			IsDefault:     a.IsDefault,
		}

		if !in.SaveAddress {
			return domain.FormatAddress(addr), nil, nil
		}

		if err := uc.repo.CreateAddress(ctx, addr); err != nil {
			return "", nil, err
		}
		return domain.FormatAddress(addr), &addr.ID, nil

	default:
		return "", nil, httperr.ErrBusiness("address_required")
	}
}
