package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/httpresp"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

type WishlistHandler struct {
	db *gorm.DB
}

func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{db: db}
}

type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func (h *WishlistHandler) List(c *gin.Context) {
	var items []models.WishlistItem
	if err := h.db.
		Preload("Product").
		Order("created_at DESC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_wishlist", "Could not list wishlist.")
		return
	}

	httpresp.List(c, items)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND active = true", req.ProductID).
		First(&product).Error; err != nil {

		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	// Adding twice is a no-op, not an error.
	var existing models.WishlistItem
	err := h.db.Where("product_id = ?", product.ID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}
	if err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_add_wishlist", "Could not update wishlist.")
		return
	}

	item := models.WishlistItem{ProductID: product.ID}
	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_add_wishlist", "Could not update wishlist.")
		return
	}

	item.Product = product
	c.JSON(http.StatusCreated, item)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	productID := c.Param("productId")

	res := h.db.Where("product_id = ?", productID).Delete(&models.WishlistItem{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_remove_wishlist", "Could not update wishlist.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "wishlist_item_not_found", "Item is not on the wishlist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "wishlist_item_removed"})
}

func (h *WishlistHandler) Clear(c *gin.Context) {
	if err := h.db.
		Where("1 = 1").
		Delete(&models.WishlistItem{}).Error; err != nil {

		httperr.Internal(c, "failed_to_clear_wishlist", "Could not clear wishlist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "wishlist_cleared"})
}
