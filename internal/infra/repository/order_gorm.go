package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	availDomain "github.com/SweetDelights01/bakery-storefront/internal/domain/availability"
	orderDomain "github.com/SweetDelights01/bakery-storefront/internal/domain/order"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Product
// --------------------------------------------------

func (r *OrderGormRepository) GetActiveProduct(
	ctx context.Context,
	productID uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", productID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// --------------------------------------------------
// Order (create / capacity)
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// slotOrders selects the non-cancelled orders holding a slot, locking the
// rows. Postgres refuses FOR UPDATE on aggregate queries, so the capacity
// check plucks ids and counts them client side instead of using COUNT.
func (r *OrderGormRepository) slotOrders(
	ctx context.Context,
	date string,
	slotTime string,
) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"scheduled_date = ? AND scheduled_time = ? AND status <> 'cancelled'",
			date,
			slotTime,
		)
}

func (r *OrderGormRepository) AssertSlotCapacity(
	ctx context.Context,
	date string,
	slotTime string,
	maxCapacity int,
) error {

	var ids []uint
	if err := r.slotOrders(ctx, date, slotTime).
		Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) >= maxCapacity {
		return httperr.ErrBusiness("slot_full")
	}

	return nil
}

// --------------------------------------------------
// Order (lookup / state change)
// --------------------------------------------------

func (r *OrderGormRepository) GetOrderByID(
	ctx context.Context,
	orderID uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) GetOrderByNumber(
	ctx context.Context,
	number string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderGormRepository) ListOrdersForDate(
	ctx context.Context,
	date string,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("scheduled_date = ?", date).
		Order("scheduled_time ASC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// --------------------------------------------------
// Availability (booking snapshot)
// --------------------------------------------------

func (r *OrderGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]availDomain.Booking, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Select("scheduled_date", "scheduled_time").
		Where("scheduled_date = ? AND status <> 'cancelled'", date).
		Order("scheduled_time ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	bookings := make([]availDomain.Booking, 0, len(orders))
	for _, o := range orders {
		bookings = append(bookings, availDomain.Booking{
			ScheduledDate: o.ScheduledDate,
			ScheduledTime: o.ScheduledTime,
		})
	}

	return bookings, nil
}

// Compile-time checks
var (
	_ orderDomain.Repository = (*OrderGormRepository)(nil)
	_ availDomain.Repository = (*OrderGormRepository)(nil)
)
