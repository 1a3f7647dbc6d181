package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreOrderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null"`
	VariantID    *uuid.UUID `gorm:"type:uuid"`
	Quantity     int        `gorm:"not null;default:1"`
	UnitPrice    float64    `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ProductModel is the GORM-specific struct for the 'products' table.
// Only the presentation fields read during assembly are mapped.
type ProductModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	ImageURL string    `gorm:"type:text"`
	Price    float64   `gorm:"type:numeric(14,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
