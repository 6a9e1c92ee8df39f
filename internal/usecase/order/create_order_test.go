package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/audit"
	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeDispatcher struct {
	events []audit.Event
}

func (f *fakeDispatcher) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakeOrderRepo struct {
	products map[uint]*models.Product
	orders   []*models.Order
	booked   map[string]int // "date time" -> count
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		products: map[uint]*models.Product{},
		booked:   map[string]int{},
	}
}

func (f *fakeOrderRepo) GetActiveProduct(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, o *models.Order) error {
	o.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, o)
	f.booked[o.ScheduledDate+" "+o.ScheduledTime]++
	return nil
}

func (f *fakeOrderRepo) AssertSlotCapacity(_ context.Context, date, slotTime string, maxCapacity int) error {
	if f.booked[date+" "+slotTime] >= maxCapacity {
		return httperr.ErrBusiness("slot_full")
	}
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(_ context.Context, id uint) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetOrderByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) UpdateOrder(_ context.Context, _ *models.Order) error { return nil }

func (f *fakeOrderRepo) ListOrdersForDate(_ context.Context, date string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.ScheduledDate == date {
			out = append(out, *o)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func newCreateUC(repo *fakeOrderRepo, d *fakeDispatcher) *CreateOrder {
	uc := NewCreateOrder(repo, d, time.UTC, 1)
	// fixed clock: Monday 2026-03-09, 10:00
	uc.now = func() time.Time {
		return time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	}
	return uc
}

func cakeRepo() *fakeOrderRepo {
	repo := newFakeOrderRepo()
	repo.products[1] = &models.Product{
		ID:        1,
		Name:      "Chocolate Dream Cake",
		BasePrice: 20,
		Active:    true,
		Sizes: []models.ProductSize{
			{Name: "Regular", Price: 25},
			{Name: "Large", Price: 40},
		},
	}
	return repo
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []CreateOrderItemInput{
			{ProductID: 1, Size: "Regular", Flavor: "Chocolate", Quantity: 2},
		},
		DeliveryType:  "delivery",
		ScheduledDate: "2026-03-10",
		ScheduledTime: "10:00",
		CustomerName:  "Jamie Baker",
		CustomerEmail: "Jamie@Example.com",
		CustomerPhone: "555-0101",
		Address:       "12 Flour St",
		City:          "Springfield",
		ZipCode:       "01101",
	}
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestCreateOrder_Success(t *testing.T) {
	repo := cakeRepo()
	d := &fakeDispatcher{}
	uc := newCreateUC(repo, d)

	o, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "pending", o.Status)
	assert.NotEmpty(t, o.Number)
	assert.Contains(t, o.Number, "SD-")
	assert.Equal(t, "jamie@example.com", o.CustomerEmail)

	// 2 x 25.00 = 50.00, fee 5.99, tax 8% of 55.99 = 4.48
	assert.InDelta(t, 50.00, o.Subtotal, 0.001)
	assert.InDelta(t, 5.99, o.DeliveryFee, 0.001)
	assert.InDelta(t, 4.48, o.Tax, 0.001)
	assert.InDelta(t, 60.47, o.Total, 0.001)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "Chocolate Dream Cake", o.Items[0].ProductName)
	assert.InDelta(t, 25.0, o.Items[0].UnitPrice, 0.001)

	require.Len(t, d.events, 1)
	assert.Equal(t, "order_created", d.events[0].Action)
}

func TestCreateOrder_PickupHasNoFee(t *testing.T) {
	uc := newCreateUC(cakeRepo(), &fakeDispatcher{})

	in := validInput()
	in.DeliveryType = "pickup"

	o, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Zero(t, o.DeliveryFee)
	// tax = 8% of 50.00
	assert.InDelta(t, 4.00, o.Tax, 0.001)
	assert.InDelta(t, 54.00, o.Total, 0.001)
}

func TestCreateOrder_UnknownSizeFallsBackToBasePrice(t *testing.T) {
	uc := newCreateUC(cakeRepo(), &fakeDispatcher{})

	in := validInput()
	in.Items[0].Size = "Gigantic"
	in.Items[0].Quantity = 1

	o, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, o.Items[0].UnitPrice, 0.001)
}

func TestCreateOrder_Validation(t *testing.T) {
	uc := newCreateUC(cakeRepo(), &fakeDispatcher{})

	cases := []struct {
		name     string
		mutate   func(*CreateOrderInput)
		wantCode string
	}{
		{"no items", func(in *CreateOrderInput) { in.Items = nil }, "empty_order"},
		{"bad delivery type", func(in *CreateOrderInput) { in.DeliveryType = "drone" }, "invalid_delivery_type"},
		{"bad date", func(in *CreateOrderInput) { in.ScheduledDate = "tomorrow" }, "invalid_date"},
		{"off-grid time", func(in *CreateOrderInput) { in.ScheduledTime = "10:15" }, "outside_business_hours"},
		{"before opening", func(in *CreateOrderInput) { in.ScheduledTime = "08:00" }, "outside_business_hours"},
		{"same-day order", func(in *CreateOrderInput) { in.ScheduledDate = "2026-03-09" }, "too_soon"},
		{"zero quantity", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }, "invalid_quantity"},
		{"unknown product", func(in *CreateOrderInput) { in.Items[0].ProductID = 99 }, "product_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.wantCode),
				"want business code %q, got %v", tc.wantCode, err)
		})
	}
}

func TestCreateOrder_SlotFull(t *testing.T) {
	repo := cakeRepo()
	d := &fakeDispatcher{}
	uc := newCreateUC(repo, d)

	// Tuesday 13:00 is a peak slot, capacity 5.
	in := validInput()
	in.ScheduledTime = "13:00"

	for i := 0; i < 5; i++ {
		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_full"))

	var actions []string
	for _, ev := range d.events {
		actions = append(actions, ev.Action)
	}
	assert.Contains(t, actions, "slot_full")
}

func TestCreateOrder_OffPeakSlotAllowsEight(t *testing.T) {
	repo := cakeRepo()
	uc := newCreateUC(repo, &fakeDispatcher{})

	in := validInput() // Tuesday 10:00, capacity 8
	for i := 0; i < 8; i++ {
		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_full"))
}

func TestChangeStatus_Lifecycle(t *testing.T) {
	repo := cakeRepo()
	d := &fakeDispatcher{}
	createUC := newCreateUC(repo, d)

	o, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	statusUC := NewChangeStatus(repo, d, time.UTC)

	confirmed, err := statusUC.Confirm(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	completed, err := statusUC.Complete(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.CompletedAt)

	_, err = statusUC.Cancel(context.Background(), o.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = statusUC.Confirm(context.Background(), 999)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}
