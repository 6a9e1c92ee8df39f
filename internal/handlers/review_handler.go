package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/httpresp"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// --------- Handlers ---------

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	if err := h.db.Where("id = ?", productID).First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("product_id = ?", product.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	if err := h.db.Where("id = ?", productID).First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	review := models.Review{
		ProductID: product.ID,
		Author:    req.Author,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Could not create review.")
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id := c.Param("reviewId")

	var review models.Review
	if err := h.db.Where("id = ?", id).First(&review).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "review_not_found", "Review not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_review", "Could not load review.")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := h.db.Save(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_update_review", "Could not update review.")
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("reviewId")

	res := h.db.Where("id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_review", "Could not delete review.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "review_not_found", "Review not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review_deleted"})
}
