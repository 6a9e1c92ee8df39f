package models

import "time"

type ProductSize struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:1000" json:"description"`
	Category    string  `gorm:"size:50" json:"category"`
	BasePrice   float64 `json:"base_price"`

	Sizes   []ProductSize `gorm:"serializer:json;type:text" json:"sizes"`
	Flavors []string      `gorm:"serializer:json;type:text" json:"flavors"`
	Images  []string      `gorm:"serializer:json;type:text" json:"images"`

	Featured bool `gorm:"default:false" json:"featured"`
	Active   bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceForSize resolves the unit price for a size name, falling back to
// the base price when the size is unknown or empty.
func (p *Product) PriceForSize(size string) float64 {
	for _, s := range p.Sizes {
		if s.Name == size {
			return s.Price
		}
	}
	return p.BasePrice
}
