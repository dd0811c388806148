package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
)

type BookingHandler struct {
	db *gorm.DB
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{db: db}
}

type BookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Slot        string `json:"slot"`
	Description string `json:"description"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide name and phone.")
		return
	}

	booking := models.Booking{
		Name:        req.Name,
		Phone:       req.Phone,
		Slot:        req.Slot,
		Description: req.Description,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&booking).Error; err != nil {
		httperr.Internal(c, "create_failed", "Error submitting booking.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking submitted successfully",
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "list_failed", "Error fetching bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"bookings": bookings},
	})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Booking{}, id)
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Error deleting booking.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted successfully",
	})
}
