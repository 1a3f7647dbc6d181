// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity shared by buyers, store owners,
// drivers and back-office staff. The search engine only reads the
// identity fields needed to present a customer on an order.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email.
	FullName  string    // The user's display name or real name.
	Phone     string    // The user's contact phone number.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
