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
)

func TestStoreRepository_FindStoreByOwner_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewStoreRepository(gormDB)

	ownerID := uuid.New()
	storeID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "phone", "is_active", "created_at", "updated_at"}).
		AddRow(storeID, ownerID, "Marché Central", "groceries", "+224 600 000 000", true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "stores" WHERE owner_id = $1`)).
		WithArgs(ownerID, 1).
		WillReturnRows(rows)

	store, err := repo.FindStoreByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, storeID, store.ID)
	assert.Equal(t, ownerID, store.OwnerID)
	assert.Equal(t, "Marché Central", store.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRepository_FindStoreByOwner_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewStoreRepository(gormDB)

	ownerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "stores"`)).
		WithArgs(ownerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	store, err := repo.FindStoreByOwner(context.Background(), ownerID)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}
