package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryAddressID     uuid.UUID  `gorm:"type:uuid;not null"`
	Status                string     `gorm:"type:varchar(32);not null;index"`
	EstimatedDeliveryDate *time.Time `gorm:"type:timestamptz"`
	CreatedAt             time.Time  `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
