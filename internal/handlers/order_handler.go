package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/middleware"
	ucorder "github.com/africamarket/africa-market-api/internal/usecase/order"
)

type OrderHandler struct {
	checkout     *ucorder.Checkout
	updateStatus *ucorder.UpdateStatus
	list         *ucorder.ListOrders
}

func NewOrderHandler(
	checkout *ucorder.Checkout,
	updateStatus *ucorder.UpdateStatus,
	list *ucorder.ListOrders,
) *OrderHandler {
	return &OrderHandler{
		checkout:     checkout,
		updateStatus: updateStatus,
		list:         list,
	}
}

// --------- Requests ---------

type CheckoutItemRequest struct {
	ID       uint            `json:"id" binding:"required"`
	Quantity int             `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

type CheckoutRequest struct {
	Items       []CheckoutItemRequest `json:"items"`
	Address     *AddressPayload       `json:"address"`
	AddressID   *uint                 `json:"address_id"`
	SaveAddress bool                  `json:"save_address"`

	// Raw so a malformed value falls back to the default charge
	// instead of failing the whole checkout.
	Shipping json.RawMessage `json:"shipping_cost"`
}

// parseShipping tolerates absent or unparsable values; pricing applies
// the default charge for anything non-positive.
func parseShipping(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}
	return d
}

type AddressPayload struct {
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"is_default"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Checkout ---------

func (h *OrderHandler) Checkout(c *gin.Context) {
	success := false
	defer func() {
		middleware.RecordOrderOperation("checkout", success)
	}()

	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid checkout payload.")
		return
	}

	in := ucorder.CheckoutInput{
		UserID:       userID,
		AddressID:    req.AddressID,
		SaveAddress:  req.SaveAddress,
		ShippingCost: parseShipping(req.Shipping),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, ucorder.CheckoutItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if req.Address != nil {
		in.Address = &ucorder.AddressInput{
			FullName:      req.Address.FullName,
			StreetAddress: req.Address.StreetAddress,
			City:          req.Address.City,
			State:         req.Address.State,
			ZipCode:       req.Address.ZipCode,
			Country:       req.Address.Country,
			Phone:         req.Address.Phone,
			IsDefault:     req.Address.IsDefault,
		}
	}

	result, err := h.checkout.Execute(c.Request.Context(), in)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	success = true

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"data": gin.H{
			"order": gin.H{
				"id":               result.Order.ID,
				"number":           result.Order.Number,
				"user_id":          result.Order.UserID,
				"status":           result.Order.Status,
				"shipping_address": result.Order.ShippingAddress,
				"address_id":       result.Order.AddressID,
				"created_at":       result.Order.CreatedAt,
				"items":            result.Items,
				"subtotal":         result.Totals.Subtotal,
				"shipping_cost":    result.Totals.Shipping,
				"total":            result.Totals.Total,
			},
		},
	})
}

func writeCheckoutError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "empty_cart":
		httperr.BadRequest(c, "empty_cart", "Cart is empty.")
	case "invalid_item":
		httperr.BadRequest(c, "invalid_item", "Cart contains an invalid line item.")
	case "address_required":
		httperr.BadRequest(c, "address_required", "Shipping address is required.")
	case "address_incomplete":
		httperr.BadRequest(c, "address_incomplete", "Please provide full name, street address, city, and country.")
	case "address_not_found":
		httperr.NotFound(c, "address_not_found", "Invalid address.")
	default:
		httperr.Internal(c, "order_creation_failed", "Error creating order.")
	}
}

// --------- Reads ---------

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orders, err := h.list.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "list_failed", "Error fetching orders.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"orders": orders},
	})
}

func (h *OrderHandler) GetMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid order id.")
		return
	}

	order, err := h.list.OneForUser(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "read_failed", "Error fetching order.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"order": order},
	})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Error fetching orders.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"orders": orders},
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid order id.")
		return
	}

	order, err := h.list.One(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "read_failed", "Error fetching order.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"order": order},
	})
}

// --------- Admin: status ---------

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	success := false
	defer func() {
		middleware.RecordOrderOperation("update_status", success)
	}()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid order id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide a status.")
		return
	}

	order, err := h.updateStatus.Execute(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status",
				"Invalid status. Must be one of: pending, processing, shipped, delivering, delivered, cancelled.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_transition", "Order is already in a final state.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			httperr.NotFound(c, "order_not_found", "Order not found.")
		default:
			httperr.Internal(c, "update_failed", "Error updating order status.")
		}
		return
	}
	success = true

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data":    gin.H{"order": order},
	})
}
