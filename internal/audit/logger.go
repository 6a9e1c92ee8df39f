package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/SweetDelights01/bakery-storefront/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	orderID *uint,
	action string,
	entity string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	event := models.OrderEvent{
		OrderID:  orderID,
		Action:   action,
		Entity:   entity,
		Metadata: metaJSON,
	}

	return l.db.Create(&event).Error
}
