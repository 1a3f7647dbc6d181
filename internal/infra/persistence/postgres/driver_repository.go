// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// driverRepository implements the repository.DriverRepository interface.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository is the constructor for driverRepository.
func NewDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &driverRepository{
		db: db,
	}
}

// FindDriverByUserID retrieves the driver profile linked to a user account.
func (repo *driverRepository) FindDriverByUserID(ctx context.Context, userID uuid.UUID) (*entity.Driver, error) {
	var driverM model.DriverModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&driverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver by user ID")
	}

	return toDriverDomain(&driverM), nil
}

// toDriverDomain converts a GORM DriverModel to a domain Driver entity.
func toDriverDomain(data *model.DriverModel) *entity.Driver {
	if data == nil {
		return nil
	}

	return &entity.Driver{
		ID:          data.ID,
		UserID:      data.UserID,
		VehicleType: data.VehicleType,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
