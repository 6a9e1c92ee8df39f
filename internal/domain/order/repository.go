package order

import (
	"context"

	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

type Repository interface {
	// -------- Product --------
	GetActiveProduct(
		ctx context.Context,
		productID uint,
	) (*models.Product, error)

	// -------- Order (create / capacity) --------
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	// AssertSlotCapacity fails with a business error when the slot already
	// holds maxCapacity non-cancelled orders.
	AssertSlotCapacity(
		ctx context.Context,
		date string,
		slotTime string,
		maxCapacity int,
	) error

	// -------- Order (lookup / state change) --------
	GetOrderByID(
		ctx context.Context,
		orderID uint,
	) (*models.Order, error)

	GetOrderByNumber(
		ctx context.Context,
		number string,
	) (*models.Order, error)

	UpdateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	ListOrdersForDate(
		ctx context.Context,
		date string,
	) ([]models.Order, error)
}
