package order

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SweetDelights01/bakery-storefront/internal/audit"
	availDomain "github.com/SweetDelights01/bakery-storefront/internal/domain/availability"
	domain "github.com/SweetDelights01/bakery-storefront/internal/domain/order"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

const (
	deliveryFee = 5.99
	taxRate     = 0.08
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderItemInput struct {
	ProductID     uint
	Size          string
	Flavor        string
	CustomMessage string
	Quantity      int
}

type CreateOrderInput struct {
	Items []CreateOrderItemInput

	DeliveryType  string
	ScheduledDate string
	ScheduledTime string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	City          string
	ZipCode       string

	SpecialRequests string
}

// ======================================================
// USE CASE
// ======================================================

// Dispatcher is what the use cases need from the audit subsystem.
type Dispatcher interface {
	Dispatch(ev audit.Event)
}

type CreateOrder struct {
	repo        domain.Repository
	audit       Dispatcher
	loc         *time.Location
	minLeadDays int

	now func() time.Time
}

func NewCreateOrder(
	repo domain.Repository,
	audit Dispatcher,
	loc *time.Location,
	minLeadDays int,
) *CreateOrder {
	return &CreateOrder{
		repo:        repo,
		audit:       audit,
		loc:         loc,
		minLeadDays: minLeadDays,
		now:         func() time.Time { return time.Now().In(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_order")
	}

	deliveryType := strings.ToLower(strings.TrimSpace(in.DeliveryType))
	if deliveryType != DeliveryTypeDelivery && deliveryType != DeliveryTypePickup {
		return nil, httperr.ErrBusiness("invalid_delivery_type")
	}

	// --------------------------------------------------
	// Scheduled slot
	// --------------------------------------------------
	scheduled, err := time.ParseInLocation(
		"2006-01-02",
		in.ScheduledDate,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !availDomain.IsSlotTime(in.ScheduledTime) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	// --------------------------------------------------
	// Lead time (orders need at least a day of notice)
	// --------------------------------------------------
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
	minDate := today.AddDate(0, 0, uc.minLeadDays)

	if scheduled.Before(minDate) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Items priced from the live catalog
	// --------------------------------------------------
	items := make([]models.OrderItem, 0, len(in.Items))
	var subtotal float64

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}

		product, err := uc.repo.GetActiveProduct(ctx, it.ProductID)
		if err != nil {
			return nil, httperr.ErrBusiness("product_not_found")
		}

		unitPrice := product.PriceForSize(it.Size)

		items = append(items, models.OrderItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Size:          it.Size,
			Flavor:        it.Flavor,
			CustomMessage: it.CustomMessage,
			Quantity:      it.Quantity,
			UnitPrice:     unitPrice,
		})

		subtotal += unitPrice * float64(it.Quantity)
	}

	// --------------------------------------------------
	// Slot capacity (same rule the availability report uses)
	// --------------------------------------------------
	hour, _ := strconv.Atoi(in.ScheduledTime[:2])
	maxCapacity := availDomain.SlotCapacity(scheduled.Weekday(), hour)

	if err := uc.repo.AssertSlotCapacity(
		ctx,
		in.ScheduledDate,
		in.ScheduledTime,
		maxCapacity,
	); err != nil {
		if httperr.IsBusiness(err, "slot_full") {
			uc.audit.Dispatch(audit.Event{
				Action: "slot_full",
				Entity: "order",
				Metadata: map[string]any{
					"date": in.ScheduledDate,
					"time": in.ScheduledTime,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Totals
	// --------------------------------------------------
	fee := 0.0
	if deliveryType == DeliveryTypeDelivery {
		fee = deliveryFee
	}

	subtotal = roundCents(subtotal)
	tax := roundCents((subtotal + fee) * taxRate)
	total := roundCents(subtotal + fee + tax)

	o := &models.Order{
		Number:          newOrderNumber(),
		Items:           items,
		DeliveryType:    deliveryType,
		ScheduledDate:   in.ScheduledDate,
		ScheduledTime:   in.ScheduledTime,
		CustomerName:    in.CustomerName,
		CustomerEmail:   strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		CustomerPhone:   in.CustomerPhone,
		Address:         in.Address,
		City:            in.City,
		ZipCode:         in.ZipCode,
		SpecialRequests: in.SpecialRequests,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Tax:             tax,
		Total:           total,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrderID: &o.ID,
		Action:  "order_created",
		Entity:  "order",
		Metadata: map[string]any{
			"number": o.Number,
			"date":   o.ScheduledDate,
			"time":   o.ScheduledTime,
		},
	})

	return o, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("SD-%s", id[:10])
}
