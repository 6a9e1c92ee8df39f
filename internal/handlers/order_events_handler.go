package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type OrderEventsHandler struct {
	db *gorm.DB
}

func NewOrderEventsHandler(db *gorm.DB) *OrderEventsHandler {
	return &OrderEventsHandler{db: db}
}

func (h *OrderEventsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	orderIDStr := c.Query("order_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.OrderEvent{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if orderIDStr != "" {
		if orderID, err := strconv.ParseUint(orderIDStr, 10, 64); err == nil {
			q = q.Where("order_id = ?", orderID)
		}
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "events_count_failed", "Could not count events.")
		return
	}

	// --------------------------------------------------
	// Page
	// --------------------------------------------------

	var events []models.OrderEvent
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error; err != nil {

		httperr.Internal(c, "events_list_failed", "Could not list events.")
		return
	}

	c.JSON(200, gin.H{
		"page":   page,
		"limit":  limit,
		"total":  total,
		"events": events,
	})
}
