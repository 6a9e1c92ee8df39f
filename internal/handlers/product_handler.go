package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/httpresp"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Category    string               `json:"category" binding:"required"`
	BasePrice   float64              `json:"base_price" binding:"required"`
	Sizes       []models.ProductSize `json:"sizes"`
	Flavors     []string             `json:"flavors"`
	Images      []string             `json:"images"`
	Featured    bool                 `json:"featured"`
}

type UpdateProductRequest struct {
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	Category    *string               `json:"category,omitempty"`
	BasePrice   *float64              `json:"base_price,omitempty"`
	Sizes       *[]models.ProductSize `json:"sizes,omitempty"`
	Flavors     *[]string             `json:"flavors,omitempty"`
	Images      *[]string             `json:"images,omitempty"`
	Featured    *bool                 `json:"featured,omitempty"`
	Active      *bool                 `json:"active,omitempty"`
}

// --------- Public ---------

func (h *ProductHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	featuredStr := strings.TrimSpace(c.Query("featured"))

	q := h.db.Where("active = true")

	if category != "" && category != "all" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if featuredStr == "true" {
		q = q.Where("featured = true")
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.
		Order("id ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "Could not list products.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND active = true", id).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Product not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Could not load product.")
		return
	}

	c.JSON(http.StatusOK, product)
}

// --------- Admin ---------

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    strings.ToLower(req.Category),
		BasePrice:   req.BasePrice,
		Sizes:       req.Sizes,
		Flavors:     req.Flavors,
		Images:      req.Images,
		Featured:    req.Featured,
		Active:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Could not create product.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ?", id).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Product not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Could not load product.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = strings.ToLower(*req.Category)
	}
	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Flavors != nil {
		product.Flavors = *req.Flavors
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Could not update product.")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ?", id).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Product not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Could not load product.")
		return
	}

	// Products referenced by past orders stay as rows; they just
	// stop being offered.
	product.Active = false
	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Could not delete product.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product_deactivated"})
}
