package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"souk/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestDriverRepository_FindDriverByUserID_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewDriverRepository(gormDB)

	userID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "vehicle_type", "is_available", "created_at", "updated_at"}).
		AddRow(driverID, userID, "moto", true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drivers" WHERE user_id = $1`)).
		WithArgs(userID, 1).
		WillReturnRows(rows)

	driver, err := repo.FindDriverByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, driverID, driver.ID)
	assert.Equal(t, userID, driver.UserID)
	assert.Equal(t, "moto", driver.VehicleType)
	assert.True(t, driver.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverRepository_FindDriverByUserID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewDriverRepository(gormDB)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drivers"`)).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	driver, err := repo.FindDriverByUserID(context.Background(), userID)
	assert.Nil(t, driver)
	assert.ErrorIs(t, err, repository.ErrDriverNotFound)
}
