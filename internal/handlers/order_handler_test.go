package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

// fakeOrderRepo serves handler lookups from memory.
type fakeOrderRepo struct {
	orders []models.Order
}

func (f *fakeOrderRepo) GetActiveProduct(ctx context.Context, productID uint) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	return nil
}

func (f *fakeOrderRepo) AssertSlotCapacity(ctx context.Context, date, slotTime string, maxCapacity int) error {
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			return &f.orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].Number == number {
			return &f.orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, o *models.Order) error {
	return nil
}

func (f *fakeOrderRepo) ListOrdersForDate(ctx context.Context, date string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.ScheduledDate == date {
			out = append(out, o)
		}
	}
	return out, nil
}

func newOrderTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	return c, w
}

func TestOrderHandler_GetByNumber(t *testing.T) {
	repo := &fakeOrderRepo{orders: []models.Order{
		{ID: 1, Number: "SD-ABC1234567", Status: "pending"},
	}}
	h := NewOrderHandler(repo, nil, nil)

	t.Run("found, number normalized to upper case", func(t *testing.T) {
		c, w := newOrderTestContext(t, "/api/orders/sd-abc1234567")
		c.Params = gin.Params{{Key: "number", Value: "sd-abc1234567"}}

		h.GetByNumber(c)

		require.Equal(t, http.StatusOK, w.Code)

		var got models.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "SD-ABC1234567", got.Number)
	})

	t.Run("unknown number", func(t *testing.T) {
		c, w := newOrderTestContext(t, "/api/orders/SD-MISSING000")
		c.Params = gin.Params{{Key: "number", Value: "SD-MISSING000"}}

		h.GetByNumber(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "order_not_found")
	})
}

func TestOrderHandler_ListByDate(t *testing.T) {
	repo := &fakeOrderRepo{orders: []models.Order{
		{ID: 1, Number: "SD-A", ScheduledDate: "2026-03-10", Status: "pending",
			Items: []models.OrderItem{{Quantity: 2}}},
		{ID: 2, Number: "SD-B", ScheduledDate: "2026-03-10", Status: "confirmed",
			Items: []models.OrderItem{{Quantity: 1}}},
		{ID: 3, Number: "SD-C", ScheduledDate: "2026-03-11", Status: "pending"},
	}}
	h := NewOrderHandler(repo, nil, nil)

	t.Run("date required", func(t *testing.T) {
		c, w := newOrderTestContext(t, "/api/admin/orders")

		h.ListByDate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "date_required")
	})

	t.Run("lists the requested date", func(t *testing.T) {
		c, w := newOrderTestContext(t, "/api/admin/orders?date=2026-03-10")

		h.ListByDate(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data  []map[string]any `json:"data"`
			Total int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("status filter", func(t *testing.T) {
		c, w := newOrderTestContext(t, "/api/admin/orders?date=2026-03-10&status=confirmed")

		h.ListByDate(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data  []map[string]any `json:"data"`
			Total int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "SD-B", resp.Data[0]["number"])
	})
}
