package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/middleware"
	"github.com/africamarket/africa-market-api/internal/models"
)

type AddressHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewAddressHandler(db *gorm.DB, repo domain.Repository) *AddressHandler {
	return &AddressHandler{db: db, repo: repo}
}

// --------- Requests ---------

type AddressRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country" binding:"required"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"is_default"`
}

// --------- Handlers ---------

func (h *AddressHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var addresses []models.Address
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		httperr.Internal(c, "list_failed", "Error fetching addresses.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"addresses": addresses},
	})
}

func (h *AddressHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide full name, street address, city, and country.")
		return
	}

	addr := models.Address{
		UserID:        userID,
		FullName:      req.FullName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Phone:         req.Phone,
		IsDefault:     req.IsDefault,
	}

	if err := h.repo.CreateAddress(c.Request.Context(), &addr); err != nil {
		httperr.Internal(c, "create_failed", "Error creating address.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Address created successfully",
		"data":    gin.H{"address": addr},
	})
}

func (h *AddressHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	addr, ok := h.ownedAddress(c, userID)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide full name, street address, city, and country.")
		return
	}

	addr.FullName = req.FullName
	addr.StreetAddress = req.StreetAddress
	addr.City = req.City
	addr.State = req.State
	addr.ZipCode = req.ZipCode
	addr.Country = req.Country
	addr.Phone = req.Phone

	if err := h.db.WithContext(c.Request.Context()).Save(addr).Error; err != nil {
		httperr.Internal(c, "update_failed", "Error updating address.")
		return
	}

	if req.IsDefault && !addr.IsDefault {
		if err := h.repo.SetDefaultAddress(c.Request.Context(), addr.ID, userID); err != nil {
			httperr.Internal(c, "update_failed", "Error updating default address.")
			return
		}
		addr.IsDefault = true
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Address updated successfully",
		"data":    gin.H{"address": addr},
	})
}

func (h *AddressHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	addr, ok := h.ownedAddress(c, userID)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(addr).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Error deleting address.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Address deleted successfully",
	})
}

func (h *AddressHandler) SetDefault(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid address id.")
		return
	}

	if err := h.repo.SetDefaultAddress(c.Request.Context(), uint(id), userID); err != nil {
		if httperr.IsBusiness(err, "address_not_found") {
			httperr.NotFound(c, "address_not_found", "Address not found.")
			return
		}
		httperr.Internal(c, "update_failed", "Error setting default address.")
		return
	}

	var addr models.Address
	if err := h.db.WithContext(c.Request.Context()).First(&addr, uint(id)).Error; err != nil {
		httperr.Internal(c, "read_failed", "Error fetching address.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Default address updated",
		"data":    gin.H{"address": addr},
	})
}

// ownedAddress loads the :id address and enforces ownership. A foreign
// address reads as not-found so existence is never leaked.
func (h *AddressHandler) ownedAddress(c *gin.Context, userID uint) (*models.Address, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid address id.")
		return nil, false
	}

	var addr models.Address
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		First(&addr).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Address not found.")
		return nil, false
	}
	return &addr, true
}
