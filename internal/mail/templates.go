package mail

import (
	"bytes"
	"fmt"
	"html/template"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/models"
	"github.com/shopspring/decimal"
)

type emailData struct {
	Username        string
	OrderID         uint
	OrderNumber     string
	CreatedAt       string
	ShippingAddress string
	Items           []itemRow
	Subtotal        string
	Shipping        string
	Total           string
}

type itemRow struct {
	Name     string
	Quantity int
	Price    string
	LineSum  string
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto;">
    <div style="background-color: #f4a261; color: white; padding: 20px; text-align: center;">
      <h1>Africa Market</h1>
      <h2>Order Invoice #{{.OrderID}}</h2>
    </div>
    <p>Dear {{.Username}},</p>
    <p>Thank you for your order! Your order has been confirmed and is now <strong>delivering</strong>.</p>
    <p><strong>Order Number:</strong> {{.OrderNumber}}<br>
       <strong>Order Date:</strong> {{.CreatedAt}}<br>
       <strong>Payment Method:</strong> Cash on Delivery</p>
    <h3>Shipping Address</h3>
    <p>{{.ShippingAddress}}</p>
    <h3>Order Items</h3>
    {{range .Items}}
    <div style="padding: 10px; border-bottom: 1px solid #eee;">
      <p><strong>{{.Name}}</strong><br>
      Quantity: {{.Quantity}} &times; ${{.Price}} = ${{.LineSum}}</p>
    </div>
    {{end}}
    <p><strong>Subtotal:</strong> ${{.Subtotal}}<br>
       <strong>Shipping:</strong> ${{.Shipping}}</p>
    <p style="font-size: 18px; font-weight: bold; border-top: 2px solid #333; padding-top: 10px;">
      Total: ${{.Total}}</p>
    <p>You will receive your order soon. Payment will be collected upon delivery.</p>
    <p style="color: #666; font-size: 12px; text-align: center;">
      Africa Market &mdash; this is an automated email, please do not reply.</p>
  </div>
</body>
</html>`))

var deliveryTmpl = template.Must(template.New("delivery").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto;">
    <div style="background-color: #2a9d8f; color: white; padding: 20px; text-align: center;">
      <h1>Africa Market</h1>
      <h2>Order #{{.OrderID}} Has Been Delivered</h2>
    </div>
    <p>Dear {{.Username}},</p>
    <p>Your order has been delivered. We hope you enjoy your purchase!</p>
    <p><strong>Order Number:</strong> {{.OrderNumber}}<br>
       <strong>Order Total:</strong> ${{.Total}}<br>
       <strong>Delivered To:</strong> {{.ShippingAddress}}</p>
    <p>Thank you for shopping with Africa Market!</p>
    <p style="color: #666; font-size: 12px; text-align: center;">
      Africa Market &mdash; this is an automated email, please do not reply.</p>
  </div>
</body>
</html>`))

func buildEmailData(o *models.Order, u *models.User, items []domain.ItemDetail) emailData {
	data := emailData{
		Username:        u.Username,
		OrderID:         o.ID,
		OrderNumber:     o.Number,
		CreatedAt:       o.CreatedAt.Format("Jan 2, 2006 15:04"),
		ShippingAddress: o.ShippingAddress,
		Subtotal:        o.TotalAmount.StringFixed(2),
		Shipping:        o.ShippingCost.StringFixed(2),
		Total:           o.TotalAmount.Add(o.ShippingCost).StringFixed(2),
	}
	for _, it := range items {
		name := it.ProductName
		if name == "" {
			name = "Product"
		}
		line := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		data.Items = append(data.Items, itemRow{
			Name:     name,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
			LineSum:  line.StringFixed(2),
		})
	}
	return data
}

func renderInvoice(o *models.Order, u *models.User, items []domain.ItemDetail) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, buildEmailData(o, u, items)); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Order Invoice #%d - Status: Delivering", o.ID), buf.String(), nil
}

func renderDelivery(o *models.Order, u *models.User, items []domain.ItemDetail) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := deliveryTmpl.Execute(&buf, buildEmailData(o, u, items)); err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Order #%d Has Been Delivered", o.ID), buf.String(), nil
}
