package models

import "time"

type OrderEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID *uint  `json:"order_id"`
	Action  string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
