package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderDomain "github.com/SweetDelights01/bakery-storefront/internal/domain/order"
	"github.com/SweetDelights01/bakery-storefront/internal/dto"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/httpresp"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
	"github.com/SweetDelights01/bakery-storefront/internal/usecase/order"
	"github.com/SweetDelights01/bakery-storefront/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	repo     orderDomain.Repository
	createUC *order.CreateOrder
	statusUC *order.ChangeStatus
}

func NewOrderHandler(
	repo orderDomain.Repository,
	createUC *order.CreateOrder,
	statusUC *order.ChangeStatus,
) *OrderHandler {
	return &OrderHandler{
		repo:     repo,
		createUC: createUC,
		statusUC: statusUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateOrderItemRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Size          string `json:"size"`
	Flavor        string `json:"flavor"`
	CustomMessage string `json:"custom_message"`
	Quantity      int    `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items" binding:"required"`

	DeliveryType  string `json:"delivery_type" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required"` // YYYY-MM-DD
	ScheduledTime string `json:"scheduled_time" binding:"required"` // HH:mm

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`

	SpecialRequests string `json:"special_requests"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not exist.")
		return
	}

	in := order.CreateOrderInput{
		DeliveryType:    strings.ToLower(strings.TrimSpace(req.DeliveryType)),
		ScheduledDate:   req.ScheduledDate,
		ScheduledTime:   req.ScheduledTime,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Address:         req.Address,
		City:            req.City,
		ZipCode:         req.ZipCode,
		SpecialRequests: req.SpecialRequests,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, order.CreateOrderItemInput{
			ProductID:     it.ProductID,
			Size:          it.Size,
			Flavor:        it.Flavor,
			CustomMessage: it.CustomMessage,
			Quantity:      it.Quantity,
		})
	}

	created, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		mapCreateOrderErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func mapCreateOrderErrors(c *gin.Context, err error) {
	badRequests := map[string]string{
		"empty_order":            "Order has no items.",
		"invalid_delivery_type":  "Delivery type must be delivery or pickup.",
		"invalid_date":           "Invalid scheduled date.",
		"outside_business_hours": "Requested time is outside business hours.",
		"too_soon":               "Orders need more lead time.",
		"invalid_quantity":       "Item quantity must be at least 1.",
	}

	for code, msg := range badRequests {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, msg)
			return
		}
	}

	if httperr.IsBusiness(err, "product_not_found") {
		httperr.BadRequest(c, "product_not_found", "One of the items is unavailable.")
		return
	}

	if httperr.IsBusiness(err, "slot_full") {
		httperr.Write(c, http.StatusConflict, "slot_full", "That time slot is fully booked.")
		return
	}

	httperr.Internal(c, "order_failed", "Could not create order.")
}

// ======================================================
// LOOKUP (PUBLIC)
// ======================================================

func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number := strings.ToUpper(strings.TrimSpace(c.Param("number")))

	ord, err := h.repo.GetOrderByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", "Could not load order.")
		return
	}

	c.JSON(http.StatusOK, ord)
}

// ======================================================
// ADMIN
// ======================================================

func (h *OrderHandler) ListByDate(c *gin.Context) {
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		httperr.BadRequest(c, "date_required", "Query param date is required.")
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	orders, err := h.repo.ListOrdersForDate(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		return
	}

	status := strings.TrimSpace(c.Query("status"))

	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}

		count := 0
		for _, it := range o.Items {
			count += it.Quantity
		}

		out = append(out, dto.OrderListDTO{
			ID:            o.ID,
			Number:        o.Number,
			ScheduledDate: o.ScheduledDate,
			ScheduledTime: o.ScheduledTime,
			DeliveryType:  o.DeliveryType,
			Status:        o.Status,
			CustomerName:  o.CustomerName,
			ItemCount:     count,
			Total:         o.Total,
			CreatedAt:     o.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

func (h *OrderHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, h.statusUC.Confirm)
}

func (h *OrderHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.statusUC.Complete)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.statusUC.Cancel)
}

func (h *OrderHandler) changeStatus(
	c *gin.Context,
	fn func(ctx context.Context, orderID uint) (*models.Order, error),
) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	ord, err := fn(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "order_not_found") {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.Write(c, http.StatusConflict, "invalid_state", "Order cannot change to that status.")
			return
		}
		httperr.Internal(c, "order_update_failed", "Could not update order.")
		return
	}

	c.JSON(http.StatusOK, ord)
}
