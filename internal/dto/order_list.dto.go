package dto

import "time"

type OrderListDTO struct {
	ID            uint      `json:"id"`
	Number        string    `json:"number"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	DeliveryType  string    `json:"delivery_type"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	ItemCount     int       `json:"item_count"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}
