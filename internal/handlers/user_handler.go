package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
)

// UserHandler is the admin back-office view over accounts.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// List returns regular accounts only; admin accounts are managed out
// of band and stay out of the back-office listing.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("role = ?", "user").
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "list_failed", "Error fetching users.")
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, publicUser(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"users": out},
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, ok := h.load(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"user": publicUser(user)},
	})
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_password", "Password must be at least 6 characters long.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_failed", "Error updating password.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(user).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "update_failed", "Error updating password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}

func (h *UserHandler) ToggleActive(c *gin.Context) {
	user, ok := h.load(c)
	if !ok {
		return
	}

	next := !user.IsActive
	if err := h.db.WithContext(c.Request.Context()).
		Model(user).
		Update("is_active", next).Error; err != nil {
		httperr.Internal(c, "update_failed", "Error updating user.")
		return
	}
	user.IsActive = next

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    gin.H{"user": publicUser(user)},
	})
}

func (h *UserHandler) load(c *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return nil, false
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return nil, false
	}
	return &user, true
}
