package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicketModel is the GORM-specific struct for the
// 'support_tickets' table. There is no foreign key to orders; the
// support flow writes "Commande N° <id>" into the description.
type SupportTicketModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(32);not null;default:'open'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}
