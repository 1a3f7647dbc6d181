package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreOrderModel is the GORM-specific struct for the 'store_orders' table.
type StoreOrderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subtotal    float64    `gorm:"type:numeric(14,2);not null;default:0"`
	DeliveryFee float64    `gorm:"type:numeric(14,2);not null;default:0"`
	Total       float64    `gorm:"type:numeric(14,2);not null;default:0"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreOrderModel) TableName() string {
	return "store_orders"
}
