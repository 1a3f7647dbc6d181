// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/errors"

	"github.com/google/uuid"
)

// ErrDriverNotFound is returned when no driver profile exists for a user.
var ErrDriverNotFound = errors.New("driver not found")

// DriverRepository resolves driver profiles for access scoping.
type DriverRepository interface {
	// FindDriverByUserID retrieves the driver profile linked to a user
	// account. Returns ErrDriverNotFound if the user has none.
	FindDriverByUserID(ctx context.Context, userID uuid.UUID) (*entity.Driver, error)
}
