package mail

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/models"
)

func sampleOrder() (*models.Order, *models.User, []domain.ItemDetail) {
	o := &models.Order{
		ID:              42,
		Number:          "9d3c1e2a",
		TotalAmount:     decimal.RequireFromString("25.50"),
		ShippingCost:    decimal.RequireFromString("5.00"),
		ShippingAddress: "12 Hamra Street, Beirut, Lebanon",
		Status:          "delivering",
		CreatedAt:       time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	u := &models.User{ID: 1, Username: "amal", Email: "amal@example.com"}
	items := []domain.ItemDetail{
		{
			OrderItem: models.OrderItem{
				Quantity: 2,
				Price:    decimal.RequireFromString("10.25"),
			},
			ProductName: "Za'atar 500g",
		},
		{
			OrderItem: models.OrderItem{
				Quantity: 1,
				Price:    decimal.RequireFromString("5.00"),
			},
			ProductName: "Olive Oil 1L",
		},
	}
	return o, u, items
}

func TestRenderInvoice(t *testing.T) {
	t.Parallel()

	o, u, items := sampleOrder()
	subject, body, err := renderInvoice(o, u, items)
	require.NoError(t, err)

	require.Equal(t, "Order Invoice #42 - Status: Delivering", subject)
	require.Contains(t, body, "amal")
	require.Contains(t, body, "9d3c1e2a")
	require.Contains(t, body, "12 Hamra Street, Beirut, Lebanon")
	require.Contains(t, body, "Za&#39;atar 500g")
	require.Contains(t, body, "25.50")
	require.Contains(t, body, "5.00")
	require.Contains(t, body, "30.50")
	// Line sum for 2 x 10.25.
	require.Contains(t, body, "20.50")
}

func TestRenderDelivery(t *testing.T) {
	t.Parallel()

	o, u, items := sampleOrder()
	subject, body, err := renderDelivery(o, u, items)
	require.NoError(t, err)

	require.Equal(t, "Order #42 Has Been Delivered", subject)
	require.Contains(t, body, "amal")
	require.Contains(t, body, "9d3c1e2a")
}

func TestBuildEmailDataFallbackName(t *testing.T) {
	t.Parallel()

	o, u, _ := sampleOrder()
	// A deleted product leaves the join columns empty.
	data := buildEmailData(o, u, []domain.ItemDetail{
		{OrderItem: models.OrderItem{Quantity: 1, Price: decimal.RequireFromString("3.00")}},
	})
	require.Len(t, data.Items, 1)
	require.Equal(t, "Product", data.Items[0].Name)
}
