package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreOrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:numeric(14,2);not null;default:0"`
	Status        string    `gorm:"type:varchar(32);not null;index"`
	Method        string    `gorm:"type:varchar(64);not null"`
	TransactionID *string   `gorm:"type:varchar(128)"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
