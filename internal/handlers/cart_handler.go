package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
	"github.com/SweetDelights01/bakery-storefront/internal/service/cart"
)

// HeaderCartToken carries the anonymous cart token. The storefront
// keeps it client side and sends it on every cart call.
const HeaderCartToken = "X-Cart-Token"

type CartHandler struct {
	db      *gorm.DB
	service *cart.Service
}

func NewCartHandler(db *gorm.DB, service *cart.Service) *CartHandler {
	return &CartHandler{db: db, service: service}
}

// --------- Requests ---------

type AddCartItemRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Size          string `json:"size"`
	Flavor        string `json:"flavor"`
	CustomMessage string `json:"custom_message"`
	Quantity      int    `json:"quantity" binding:"required"`
}

type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// --------- Helpers ---------

func (h *CartHandler) token(c *gin.Context) (string, bool) {
	token := c.GetHeader(HeaderCartToken)
	if token == "" {
		httperr.BadRequest(c, "cart_token_required", "Missing cart token header.")
		return "", false
	}
	return token, true
}

func (h *CartHandler) respond(c *gin.Context, ct *cart.Cart, err error) {
	if err != nil {
		if httperr.IsBusiness(err, "cart_not_found") {
			httperr.NotFound(c, "cart_not_found", "Cart not found or expired.")
			return
		}
		if httperr.IsBusiness(err, "invalid_quantity") {
			httperr.BadRequest(c, "invalid_quantity", "Quantity must be at least 1.")
			return
		}
		httperr.Internal(c, "cart_failed", "Could not update cart.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":       ct,
		"subtotal":   ct.Subtotal(),
		"item_count": ct.ItemCount(),
	})
}

// --------- Handlers ---------

func (h *CartHandler) Create(c *gin.Context) {
	ct, err := h.service.Create(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "cart_failed", "Could not create cart.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cart":       ct,
		"subtotal":   0.0,
		"item_count": 0,
	})
}

func (h *CartHandler) Get(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	ct, err := h.service.Get(c.Request.Context(), token)
	h.respond(c, ct, err)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// The stored line carries a price snapshot, so the product is
	// resolved here rather than trusted from the request.
	var product models.Product
	if err := h.db.
		Where("id = ? AND active = true", req.ProductID).
		First(&product).Error; err != nil {

		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	ct, err := h.service.AddItem(c.Request.Context(), token, cart.Item{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Size:          req.Size,
		Flavor:        req.Flavor,
		CustomMessage: req.CustomMessage,
		Quantity:      req.Quantity,
		UnitPrice:     product.PriceForSize(req.Size),
	})
	h.respond(c, ct, err)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ct, err := h.service.UpdateQuantity(c.Request.Context(), token, req.ProductID, req.Quantity)
	h.respond(c, ct, err)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	productID, ok := parseUintParam(c, "productId")
	if !ok {
		return
	}

	ct, err := h.service.RemoveItem(c.Request.Context(), token, productID)
	h.respond(c, ct, err)
}

func (h *CartHandler) Clear(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}

	ct, err := h.service.Clear(c.Request.Context(), token)
	h.respond(c, ct, err)
}
