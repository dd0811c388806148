package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/africamarket/africa-market-api/internal/cache"
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
	"github.com/africamarket/africa-market-api/internal/storage"
)

const (
	productCacheKey = "products:all"
	productCacheTTL = 5 * time.Minute
)

type ProductHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	images *storage.ImageStore
}

func NewProductHandler(db *gorm.DB, c *cache.Cache, images *storage.ImageStore) *ProductHandler {
	return &ProductHandler{db: db, cache: c, images: images}
}

// --------- Requests ---------

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}

// --------- Public ---------

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product

	if !h.cache.Get(c.Request.Context(), productCacheKey, &products) {
		if err := h.db.WithContext(c.Request.Context()).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			httperr.Internal(c, "list_failed", "Error fetching products.")
			return
		}
		h.cache.Set(c.Request.Context(), productCacheKey, products, productCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"products": products},
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid product id.")
		return
	}

	var product models.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"product": product},
	})
}

// --------- Admin ---------

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide name and price.")
		return
	}
	if req.Price.Sign() <= 0 {
		httperr.BadRequest(c, "invalid_price", "Price must be positive.")
		return
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		httperr.Internal(c, "create_failed", "Error creating product.")
		return
	}
	h.cache.Delete(c.Request.Context(), productCacheKey)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"data":    gin.H{"product": product},
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid product id.")
		return
	}

	var product models.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide name and price.")
		return
	}
	if req.Price.Sign() <= 0 {
		httperr.BadRequest(c, "invalid_price", "Price must be positive.")
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Description = req.Description
	if req.Image != "" {
		product.Image = req.Image
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&product).Error; err != nil {
		httperr.Internal(c, "update_failed", "Error updating product.")
		return
	}
	h.cache.Delete(c.Request.Context(), productCacheKey)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"data":    gin.H{"product": product},
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid product id.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Product{}, id)
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Error deleting product.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}
	h.cache.Delete(c.Request.Context(), productCacheKey)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// UploadImage accepts a multipart "image" file, converts it to webp
// and stores it; the product keeps the resulting URL.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		httperr.Internal(c, "storage_unavailable", "Image storage is not configured.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid product id.")
		return
	}

	var product models.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Please attach an image file.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Error reading upload.")
		return
	}
	defer f.Close()

	url, err := h.images.PutProductImage(c.Request.Context(), f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not process the image.")
		return
	}

	product.Image = url
	if err := h.db.WithContext(c.Request.Context()).Save(&product).Error; err != nil {
		httperr.Internal(c, "update_failed", "Error saving product image.")
		return
	}
	h.cache.Delete(c.Request.Context(), productCacheKey)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"product": product},
	})
}
