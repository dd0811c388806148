package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Create is public: anyone may submit the contact form.
func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide name, email, and message.")
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&contact).Error; err != nil {
		httperr.Internal(c, "create_failed", "Error submitting message.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully",
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		httperr.Internal(c, "list_failed", "Error fetching messages.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"contacts": contacts},
	})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid contact id.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Contact{}, id)
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Error deleting message.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "contact_not_found", "Message not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message deleted successfully",
	})
}
