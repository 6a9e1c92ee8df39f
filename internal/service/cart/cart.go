package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
)

// Item is one cart line. Lines are merged on the full customization key
// (product, size, flavor, custom message), so two differently inscribed
// cakes stay separate lines.
type Item struct {
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Size          string  `json:"size"`
	Flavor        string  `json:"flavor"`
	CustomMessage string  `json:"custom_message"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

func (i Item) sameLine(other Item) bool {
	return i.ProductID == other.ProductID &&
		i.Size == other.Size &&
		i.Flavor == other.Flavor &&
		i.CustomMessage == other.CustomMessage
}

type Cart struct {
	Token     string    `json:"token"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	var count int
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}

// Store persists carts by token. The Redis implementation is the real
// one; tests run against an in-memory store.
type Store interface {
	Get(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, token string) error
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	store Store

	now func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

func (s *Service) Create(ctx context.Context) (*Cart, error) {
	c := &Cart{
		Token:     uuid.NewString(),
		Items:     []Item{},
		UpdatedAt: s.now(),
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, token string) (*Cart, error) {
	return s.store.Get(ctx, token)
}

// AddItem merges into an existing matching line, otherwise appends.
func (s *Service) AddItem(ctx context.Context, token string, item Item) (*Cart, error) {
	if item.Quantity < 1 {
		return nil, httperr.ErrBusiness("invalid_quantity")
	}

	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].sameLine(item) {
			c.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}

	if !merged {
		c.Items = append(c.Items, item)
	}

	return c, s.save(ctx, c)
}

// UpdateQuantity sets the quantity of every line of a product; a
// quantity of zero or less removes the product entirely.
func (s *Service) UpdateQuantity(ctx context.Context, token string, productID uint, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, token, productID)
	}

	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
		}
	}

	return c, s.save(ctx, c)
}

func (s *Service) RemoveItem(ctx context.Context, token string, productID uint) (*Cart, error) {
	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept

	return c, s.save(ctx, c)
}

func (s *Service) Clear(ctx context.Context, token string) (*Cart, error) {
	c, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	c.Items = []Item{}
	return c, s.save(ctx, c)
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = s.now()
	return s.store.Save(ctx, c)
}
