package models

import "time"

type OrderItem struct {
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Size          string  `json:"size"`
	Flavor        string  `json:"flavor"`
	CustomMessage string  `json:"custom_message"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"size:20;uniqueIndex;not null" json:"number"`

	Items []OrderItem `gorm:"serializer:json;type:text" json:"items"`

	DeliveryType string `gorm:"size:20;default:'pickup'" json:"delivery_type"`

	// Scheduled pickup/delivery slot. Time is on the bookable 30-minute grid.
	ScheduledDate string `gorm:"size:10;index:idx_orders_slot" json:"scheduled_date"`
	ScheduledTime string `gorm:"size:5;index:idx_orders_slot" json:"scheduled_time"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	Address       string `gorm:"size:255" json:"address"`
	City          string `gorm:"size:100" json:"city"`
	ZipCode       string `gorm:"size:20" json:"zip_code"`

	SpecialRequests string `gorm:"size:500" json:"special_requests"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
